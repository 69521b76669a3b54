package overlay

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"mindful/internal/core/catalog"
	"mindful/internal/core/timekeeper"
	"mindful/internal/ui/animation"
)

func startedSnapshot(t *testing.T, id string) timekeeper.Snapshot {
	t.Helper()
	session, ok := catalog.Lookup(id)
	require.True(t, ok)
	var state timekeeper.State
	state.Start(session)
	return state.Snapshot()
}

func TestShowBreathingSession(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, Config{Opacity: 255, Fullscreen: false}, nil)
	view.Show(startedSnapshot(t, "2"))

	require.True(t, view.Visible())
	require.Equal(t, "Deep Breathing", view.title.Text)
	require.Equal(t, "💨", view.icon.Text)
	require.Equal(t, "5:00", view.clock.Text)
	require.Equal(t, "Breathe In", view.phase.Text)
	require.True(t, view.breathing.Visible())
	require.Equal(t, "⏸", view.toggle.Text)
}

func TestShowMeditationHidesBreathingGuide(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, Config{Opacity: 255}, nil)
	view.Show(startedSnapshot(t, "1"))

	require.False(t, view.breathing.Visible())
	require.Equal(t, "10:00", view.clock.Text)
}

func TestUpdateReflectsPauseAndPhase(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, Config{Opacity: 255}, nil)
	session, _ := catalog.Lookup("6")
	var state timekeeper.State
	state.Start(session)
	view.Show(state.Snapshot())

	state.AdvancePhase()
	state.Tick()
	state.Toggle()
	view.Update(state.Snapshot())

	require.Equal(t, "Hold", view.phase.Text)
	require.Equal(t, "7:59", view.clock.Text)
	require.Equal(t, "▶", view.toggle.Text)
}

func TestButtonsInvokeHandlers(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, Config{Opacity: 255}, nil)
	toggles, stops := 0, 0
	view.SetOnToggle(func() { toggles++ })
	view.SetOnStop(func() { stops++ })
	view.Show(startedSnapshot(t, "2"))

	test.Tap(view.toggle)
	test.Tap(view.stop)
	test.Tap(view.closeButton)

	require.Equal(t, 1, toggles)
	require.Equal(t, 2, stops)
}

func TestHideStopsEngine(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	engine := animation.New(animation.DefaultConfig(), nil)
	view := New(app, Config{Opacity: 255}, engine)
	view.SetPhaseDuration(5 * time.Second)
	view.Show(startedSnapshot(t, "2"))
	require.NotNil(t, view.cancelCtx)

	view.Hide()
	require.False(t, view.Visible())
	require.Nil(t, view.cancelCtx)
}

func TestUpdateConfigKeepsGradientColors(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := New(app, Config{Opacity: 255}, nil)
	view.Show(startedSnapshot(t, "1"))
	view.UpdateConfig(Config{Opacity: 200})

	start, ok := view.background.StartColor.(color.NRGBA)
	require.True(t, ok)
	require.Equal(t, uint8(200), start.A)
	require.Equal(t, uint8(0xfb), start.R)
}
