package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidLoginItem indicates a login item without a name or executable.
var ErrInvalidLoginItem = errors.New("invalid login item")

// TrayArgument is the subcommand login items launch the app with, so it
// starts hidden in the tray.
const TrayArgument = "tray"

// LoginItem describes how the app is launched at login.
type LoginItem struct {
	Name    string
	Exec    string
	Args    []string
	Comment string
}

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(item LoginItem) error
	DisableAutostart(name string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// SyncAutostart registers or removes the login item for the running binary.
func SyncAutostart(service Service, appName string, enabled bool) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("enable autostart: resolve executable: %w", err)
	}
	return service.EnableAutostart(LoginItem{
		Name:    appName,
		Exec:    execPath,
		Args:    []string{TrayArgument},
		Comment: "Meditation and breathing timer",
	})
}

func (item LoginItem) validate() error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLoginItem)
	}
	if strings.TrimSpace(item.Exec) == "" {
		return fmt.Errorf("%w: empty executable", ErrInvalidLoginItem)
	}
	return nil
}

// slug turns an app name into a lowercase, dash separated file name stem.
func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func writeLoginFile(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func removeLoginFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
