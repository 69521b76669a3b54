package picker

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"mindful/internal/core/catalog"
	"mindful/internal/core/model"
)

func TestTappingSessionSelectsIt(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var selected []string
	picker := New(app, "Mindful", catalog.HomeContent(), catalog.All(), Callbacks{
		OnSelect: func(session model.Session) {
			selected = append(selected, session.ID)
		},
	})

	require.Len(t, picker.buttons, 6)
	test.Tap(picker.buttons[1])
	test.Tap(picker.buttons[5])

	require.Equal(t, []string{"2", "6"}, selected)
}

func TestButtonsShowDuration(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	picker := New(app, "Mindful", catalog.HomeContent(), catalog.All(), Callbacks{})
	require.Contains(t, picker.buttons[0].Text, "Morning Peace")
	require.Contains(t, picker.buttons[0].Text, "10 minutes")
	require.NotNil(t, picker.buttons[0].Icon)
}

func TestSettingsButton(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	opened := false
	picker := New(app, "Mindful", catalog.HomeContent(), nil, Callbacks{
		OnPreferences: func() { opened = true },
	})
	test.Tap(picker.settings)
	require.True(t, opened)
	require.Empty(t, picker.buttons)
}
