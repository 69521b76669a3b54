//go:build linux

package platform

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (service *platformService) EnableAutostart(item LoginItem) error {
	if err := item.validate(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	path, err := service.desktopEntryPath(item.Name)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := writeLoginFile(path, buildDesktopEntry(item)); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("disable autostart: %w: empty name", ErrInvalidLoginItem)
	}
	path, err := service.desktopEntryPath(name)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := removeLoginFile(path); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func (service *platformService) desktopEntryPath(name string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", slug(name)+".desktop"), nil
}

// buildDesktopEntry renders an XDG autostart entry.
func buildDesktopEntry(item LoginItem) string {
	fields := []string{desktopExecQuote(item.Exec)}
	for _, arg := range item.Args {
		fields = append(fields, desktopExecQuote(arg))
	}

	var entry strings.Builder
	entry.WriteString("[Desktop Entry]\n")
	for _, line := range [][2]string{
		{"Type", "Application"},
		{"Name", item.Name},
		{"Comment", item.Comment},
		{"Exec", strings.Join(fields, " ")},
		{"Icon", slug(item.Name)},
		{"Terminal", "false"},
		{"X-GNOME-Autostart-enabled", "true"},
	} {
		if line[1] == "" {
			continue
		}
		fmt.Fprintf(&entry, "%s=%s\n", line[0], line[1])
	}
	return entry.String()
}

func desktopExecQuote(arg string) string {
	if !strings.ContainsAny(arg, " \t\"'\\$`") {
		return arg
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", "$", `\$`).Replace(arg)
	return `"` + escaped + `"`
}
