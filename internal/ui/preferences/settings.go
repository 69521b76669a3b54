package preferences

import (
	"time"

	"mindful/internal/core/model"
)

const (
	MinOverlayOpacity = 0.7
	MaxOverlayOpacity = 1.0
	MinPhaseDuration  = 2 * time.Second
	MaxPhaseDuration  = 10 * time.Second
)

// Settings defines editable user preferences.
type Settings struct {
	PhaseDuration time.Duration
	LaunchAtLogin bool

	OverlayOpacity float64
	Fullscreen     bool
}

// DefaultSettings returns default settings for Mindful.
func DefaultSettings() Settings {
	return Settings{
		PhaseDuration:  model.DefaultPhaseInterval,
		LaunchAtLogin:  false,
		OverlayOpacity: 0.95,
		Fullscreen:     true,
	}
}

// RuntimeConfig converts settings to the session runtime configuration.
func (settings Settings) RuntimeConfig() model.RuntimeConfig {
	return model.RuntimeConfig{
		TickInterval:  model.DefaultTickInterval,
		PhaseInterval: settings.PhaseDuration,
	}.Normalize()
}

// ValidOpacity reports whether value is an accepted overlay opacity.
func ValidOpacity(value float64) bool {
	return value >= MinOverlayOpacity && value <= MaxOverlayOpacity
}

// ValidPhaseDuration reports whether value is an accepted phase length.
func ValidPhaseDuration(value time.Duration) bool {
	return value >= MinPhaseDuration && value <= MaxPhaseDuration
}
