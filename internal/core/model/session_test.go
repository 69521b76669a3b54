package model

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradientResolvesPalette(t *testing.T) {
	gradient := Gradient{From: "orange-400", To: "pink-500"}
	require.Equal(t, "from-orange-400 to-pink-500", gradient.Token())

	from, to := gradient.Hex()
	require.Equal(t, "#fb923c", from)
	require.Equal(t, "#ec4899", to)
}

func TestResolveColorFallsBackToBrand(t *testing.T) {
	require.Equal(t, BrandBlue, ResolveColor("mauve-900"))
	require.Equal(t, color.NRGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}, ResolveColor(" Cyan-400 "))
}

func TestCategoryValid(t *testing.T) {
	require.True(t, CategoryMeditation.Valid())
	require.True(t, CategoryBreathing.Valid())
	require.True(t, CategorySleep.Valid())
	require.False(t, Category("").Valid())
}

func TestRuntimeConfigNormalize(t *testing.T) {
	require.Equal(t, DefaultRuntimeConfig(), RuntimeConfig{}.Normalize())

	custom := RuntimeConfig{TickInterval: 10, PhaseInterval: 20}
	require.Equal(t, custom, custom.Normalize())
}

func TestSessionDuration(t *testing.T) {
	session := Session{DurationMinutes: 8, Category: CategoryBreathing}
	require.Equal(t, 480, session.DurationSeconds())
	require.True(t, session.IsBreathing())
}
