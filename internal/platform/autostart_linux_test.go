//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutostartWritesAndRemovesDesktopEntry(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	service := NewService()

	item := LoginItem{Name: "Mindful", Exec: "/opt/mindful app/mindful", Args: []string{TrayArgument}, Comment: "timer"}
	require.NoError(t, service.EnableAutostart(item))

	entryPath := filepath.Join(configHome, "autostart", "mindful.desktop")
	data, err := os.ReadFile(entryPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "Name=Mindful\n")
	require.Contains(t, string(data), "Comment=timer\n")
	require.Contains(t, string(data), `Exec="/opt/mindful app/mindful" tray`)

	require.NoError(t, service.DisableAutostart("Mindful"))
	_, err = os.Stat(entryPath)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, service.DisableAutostart("Mindful"))
}

func TestSyncAutostartDisable(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, SyncAutostart(NewService(), "Mindful", false))
}

func TestAutostartRejectsEmptyInput(t *testing.T) {
	service := NewService()
	require.ErrorIs(t, service.EnableAutostart(LoginItem{Exec: "/bin/true"}), ErrInvalidLoginItem)
	require.ErrorIs(t, service.EnableAutostart(LoginItem{Name: "Mindful"}), ErrInvalidLoginItem)
	require.ErrorIs(t, service.DisableAutostart(" "), ErrInvalidLoginItem)
}

func TestDesktopEntryOmitsEmptyFields(t *testing.T) {
	entry := buildDesktopEntry(LoginItem{Name: "Calm Mind", Exec: "/usr/bin/calm"})
	require.NotContains(t, entry, "Comment=")
	require.Contains(t, entry, "Exec=/usr/bin/calm\n")
	require.Contains(t, entry, "Icon=calm-mind\n")
}
