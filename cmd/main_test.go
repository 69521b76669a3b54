package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mindful/internal/core/catalog"
)

func TestSessionsCommandListsCatalog(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"sessions"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(catalog.All())+1)
	require.Contains(t, lines[0], "ID")
	require.True(t, strings.HasPrefix(lines[1], "1 "))
	require.Contains(t, lines[1], "Morning Peace")
	require.Contains(t, lines[1], "10 min")
}

func TestTUICommandRejectsUnknownSession(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"tui", "--session", "nope"})

	err := root.Execute()
	require.ErrorIs(t, err, catalog.ErrUnknownSession)
}

func TestLoadSettingsPhaseOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { phaseSeconds = 0 })

	phaseSeconds = 6
	require.Equal(t, 6, int(loadSettings().PhaseDuration.Seconds()))

	phaseSeconds = 60
	require.Equal(t, 4, int(loadSettings().PhaseDuration.Seconds()))
}

func TestOpacityToAlpha(t *testing.T) {
	require.Equal(t, uint8(255), opacityToAlpha(1))
	require.Equal(t, uint8(0), opacityToAlpha(-0.5))
	require.Equal(t, uint8(255), opacityToAlpha(3))
	require.Equal(t, uint8(242), opacityToAlpha(0.95))
}
