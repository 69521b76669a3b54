package model

import "time"

const (
	DefaultTickInterval  = time.Second
	DefaultPhaseInterval = 4 * time.Second
)

// RuntimeConfig contains timer settings for the session runtime.
type RuntimeConfig struct {
	// TickInterval is the wall-clock length of one countdown second.
	TickInterval time.Duration
	// PhaseInterval is how long each breathing phase lasts.
	PhaseInterval time.Duration
}

// DefaultRuntimeConfig returns the one-second countdown and four-second
// breathing phases.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickInterval:  DefaultTickInterval,
		PhaseInterval: DefaultPhaseInterval,
	}
}

// Normalize fills non-positive intervals with defaults.
func (config RuntimeConfig) Normalize() RuntimeConfig {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.PhaseInterval <= 0 {
		config.PhaseInterval = DefaultPhaseInterval
	}
	return config
}
