//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(item LoginItem) error {
	if err := item.validate(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := runReg("add", registryRunKey, "/v", item.Name, "/t", "REG_SZ", "/d", runCommandLine(item), "/f"); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("disable autostart: %w: empty name", ErrInvalidLoginItem)
	}
	if err := runReg("delete", registryRunKey, "/v", name, "/f"); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// runCommandLine renders the Run key value: quoted executable then arguments.
func runCommandLine(item LoginItem) string {
	parts := []string{`"` + strings.Trim(item.Exec, `"`) + `"`}
	for _, arg := range item.Args {
		if strings.ContainsAny(arg, " \t") {
			arg = `"` + arg + `"`
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
