package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"mindful/internal/platform"
	"mindful/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PhaseSeconds   int     `yaml:"phase_seconds"`
	LaunchAtLogin  bool    `yaml:"launch_at_login"`
	OverlayOpacity float64 `yaml:"overlay_opacity"`
	Fullscreen     *bool   `yaml:"fullscreen"`
}

// envSettings are per-process overrides applied on top of the file.
type envSettings struct {
	Fullscreen     *bool    `env:"MINDFUL_FULLSCREEN"`
	OverlayOpacity *float64 `env:"MINDFUL_OVERLAY_OPACITY"`
	PhaseSeconds   *int     `env:"MINDFUL_PHASE_SECONDS"`
}

// LoadSettings reads user preferences for appName from the user config dir.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads preferences from configPath and applies
// environment overrides.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	fileErr := readSettingsFile(configPath, &settings)
	if err := applyEnvSettings(&settings); err != nil {
		return settings, err
	}
	return settings, fileErr
}

// SaveSettings writes user preferences for appName to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fullscreen := settings.Fullscreen
	fileData := yamlSettings{
		PhaseSeconds:   int(settings.PhaseDuration / time.Second),
		LaunchAtLogin:  settings.LaunchAtLogin,
		OverlayOpacity: settings.OverlayOpacity,
		Fullscreen:     &fullscreen,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func readSettingsFile(configPath string, settings *preferences.Settings) error {
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(settings, fileData)
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if phase := time.Duration(fileData.PhaseSeconds) * time.Second; preferences.ValidPhaseDuration(phase) {
		settings.PhaseDuration = phase
	}
	if preferences.ValidOpacity(fileData.OverlayOpacity) {
		settings.OverlayOpacity = fileData.OverlayOpacity
	}
	if fileData.Fullscreen != nil {
		settings.Fullscreen = *fileData.Fullscreen
	}
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}

func applyEnvSettings(settings *preferences.Settings) error {
	var overrides envSettings
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.Fullscreen != nil {
		settings.Fullscreen = *overrides.Fullscreen
	}
	if overrides.OverlayOpacity != nil && preferences.ValidOpacity(*overrides.OverlayOpacity) {
		settings.OverlayOpacity = *overrides.OverlayOpacity
	}
	if overrides.PhaseSeconds != nil {
		phase := time.Duration(*overrides.PhaseSeconds) * time.Second
		if preferences.ValidPhaseDuration(phase) {
			settings.PhaseDuration = phase
		}
	}
	return nil
}
