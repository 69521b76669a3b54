//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (service *platformService) EnableAutostart(item LoginItem) error {
	if err := item.validate(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	path, err := launchAgentPath(item.Name)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := writeLoginFile(path, buildLaunchAgentPlist(item)); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("disable autostart: %w: empty name", ErrInvalidLoginItem)
	}
	path, err := launchAgentPath(name)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := removeLoginFile(path); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

func launchAgentLabel(name string) string {
	return "com.mindful." + slug(name)
}

func launchAgentPath(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(name)+".plist"), nil
}

var plistEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")

// buildLaunchAgentPlist renders a LaunchAgent that starts the app at login.
func buildLaunchAgentPlist(item LoginItem) string {
	var plist strings.Builder
	plist.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
`)
	fmt.Fprintf(&plist, "\t<key>Label</key>\n\t<string>%s</string>\n", plistEscaper.Replace(launchAgentLabel(item.Name)))
	plist.WriteString("\t<key>ProgramArguments</key>\n\t<array>\n")
	for _, arg := range append([]string{item.Exec}, item.Args...) {
		fmt.Fprintf(&plist, "\t\t<string>%s</string>\n", plistEscaper.Replace(arg))
	}
	plist.WriteString("\t</array>\n\t<key>RunAtLoad</key>\n\t<true/>\n\t<key>ProcessType</key>\n\t<string>Interactive</string>\n</dict>\n</plist>\n")
	return plist.String()
}
