package overlay

import (
	"context"
	"image/color"
	"time"

	"mindful/internal/core/model"
	"mindful/internal/core/timekeeper"
	"mindful/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config defines session view visuals.
type Config struct {
	Opacity    uint8
	Fullscreen bool
}

const (
	iconTextSize   = float32(96)
	titleTextSize  = float32(36)
	phaseTextSize  = float32(24)
	clockTextSize  = float32(72)
	circleRestSize = float32(128)
	maxCircleScale = float32(1.5)
	windowedWidth  = float32(480)
	windowedHeight = float32(720)
)

var textColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Window is the full-screen view of a running session.
type Window struct {
	window      fyne.Window
	config      Config
	background  *canvas.LinearGradient
	icon        *canvas.Text
	title       *canvas.Text
	phase       *canvas.Text
	circle      *canvas.Circle
	circleBox   *fyne.Container
	circleShape *breathLayout
	breathing   *fyne.Container
	clock       *canvas.Text
	toggle      *widget.Button
	stop        *widget.Button
	closeButton *widget.Button
	engine      *animation.Engine
	cancelCtx   context.CancelFunc
	shown       timekeeper.Snapshot
	phaseLength time.Duration
	visible     bool
	onToggle    func()
	onStop      func()
}

// New creates the session window. It stays hidden until Show.
func New(app fyne.App, config Config, engine *animation.Engine) *Window {
	window := app.NewWindow("Mindful")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewLinearGradient(color.Black, color.Black, 135)

	icon := newText("", iconTextSize, false)
	title := newText("", titleTextSize, true)
	phase := newText("", phaseTextSize, true)
	clock := newText("0:00", clockTextSize, false)
	clock.TextStyle.Monospace = true

	circle := canvas.NewCircle(color.NRGBA{R: 255, G: 255, B: 255, A: 77})
	circleShape := &breathLayout{scale: 1}
	circleBox := container.New(circleShape, circle)
	breathing := container.NewVBox(phase, circleBox)

	overlay := &Window{
		window:      window,
		config:      config,
		background:  background,
		icon:        icon,
		title:       title,
		phase:       phase,
		circle:      circle,
		circleBox:   circleBox,
		circleShape: circleShape,
		breathing:   breathing,
		clock:       clock,
		engine:      engine,
	}

	overlay.toggle = widget.NewButton("⏸", func() {
		if overlay.onToggle != nil {
			overlay.onToggle()
		}
	})
	overlay.stop = widget.NewButton("⏹", overlay.requestStop)
	overlay.closeButton = widget.NewButton("×", overlay.requestStop)
	overlay.closeButton.Importance = widget.LowImportance

	controls := container.NewHBox(overlay.toggle, overlay.stop)
	body := container.NewVBox(
		container.NewCenter(icon),
		container.NewCenter(title),
		container.NewCenter(breathing),
		container.NewCenter(clock),
		container.NewCenter(controls),
	)
	top := container.NewHBox(overlay.closeButton)
	content := container.NewBorder(top, nil, nil, nil, container.NewCenter(body))

	window.SetContent(container.NewStack(background, content))
	window.SetCloseIntercept(overlay.requestStop)
	overlay.applyWindowMode()

	return overlay
}

// SetEngine attaches the animation engine.
func (overlay *Window) SetEngine(engine *animation.Engine) {
	overlay.engine = engine
}

// SetOnToggle sets the play/pause handler.
func (overlay *Window) SetOnToggle(handler func()) {
	overlay.onToggle = handler
}

// SetOnStop sets the handler for the stop and close buttons.
func (overlay *Window) SetOnStop(handler func()) {
	overlay.onStop = handler
}

// Show presents a freshly started session.
func (overlay *Window) Show(snapshot timekeeper.Snapshot) {
	overlay.stopEngine()
	overlay.shown = timekeeper.Snapshot{}

	from, to := snapshot.Session.Color.RGB()
	from.A = overlay.config.Opacity
	to.A = overlay.config.Opacity
	overlay.background.StartColor = from
	overlay.background.EndColor = to
	overlay.background.Refresh()

	overlay.icon.Text = snapshot.Session.Icon
	overlay.icon.Refresh()
	overlay.title.Text = snapshot.Session.Title
	overlay.title.Refresh()
	overlay.setCircleScale(1)

	overlay.Update(snapshot)
	overlay.applyWindowMode()
	overlay.window.Show()
	overlay.window.RequestFocus()
	overlay.visible = true

	if overlay.engine != nil {
		ctx, cancel := context.WithCancel(context.Background())
		overlay.cancelCtx = cancel
		overlay.engine.Start(ctx)
		if snapshot.ShowsBreathing() && snapshot.Playing {
			overlay.engine.SetTarget(snapshot.Phase.Scale(), overlay.phaseDuration())
		}
	}
}

// Update refreshes the clock, phase and controls.
func (overlay *Window) Update(snapshot timekeeper.Snapshot) {
	previous := overlay.shown
	overlay.shown = snapshot

	overlay.clock.Text = snapshot.Clock()
	overlay.clock.Refresh()

	if snapshot.Playing {
		overlay.toggle.SetText("⏸")
	} else {
		overlay.toggle.SetText("▶")
	}

	if !snapshot.ShowsBreathing() {
		overlay.breathing.Hide()
		return
	}
	overlay.breathing.Show()
	overlay.phase.Text = snapshot.Phase.Instruction()
	overlay.phase.Refresh()

	if overlay.engine == nil || !overlay.visible {
		return
	}
	switch {
	case !snapshot.Playing:
		overlay.engine.Freeze()
	case snapshot.Phase != previous.Phase || !previous.Playing:
		overlay.engine.SetTarget(snapshot.Phase.Scale(), overlay.phaseDuration())
	}
}

// Hide closes the session view and stops animations.
func (overlay *Window) Hide() {
	overlay.stopEngine()
	overlay.visible = false
	if overlay.config.Fullscreen {
		overlay.window.SetFullScreen(false)
	}
	overlay.window.Hide()
}

// Visible reports whether the session view is on screen.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// UpdateConfig updates session view visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	if start, ok := overlay.background.StartColor.(color.NRGBA); ok {
		start.A = config.Opacity
		overlay.background.StartColor = start
	}
	if end, ok := overlay.background.EndColor.(color.NRGBA); ok {
		end.A = config.Opacity
		overlay.background.EndColor = end
	}
	overlay.background.Refresh()
	if overlay.visible {
		overlay.applyWindowMode()
	}
}

// SetFrame applies an animation frame. Safe to call from any goroutine.
func (overlay *Window) SetFrame(frame animation.Frame) {
	fyne.Do(func() {
		overlay.setCircleScale(frame.CircleScale)
		overlay.icon.TextSize = iconTextSize * frame.IconScale
		overlay.icon.Refresh()
	})
}

// SetPhaseDuration sets how long the circle takes to reach each phase's size.
func (overlay *Window) SetPhaseDuration(duration time.Duration) {
	overlay.phaseLength = duration
}

func (overlay *Window) phaseDuration() time.Duration {
	if overlay.phaseLength <= 0 {
		return model.DefaultPhaseInterval
	}
	return overlay.phaseLength
}

func (overlay *Window) requestStop() {
	if overlay.onStop != nil {
		overlay.onStop()
	}
}

func (overlay *Window) setCircleScale(scale float32) {
	overlay.circleShape.scale = scale
	overlay.circleBox.Refresh()
}

func (overlay *Window) stopEngine() {
	if overlay.cancelCtx != nil {
		overlay.cancelCtx()
		overlay.cancelCtx = nil
	}
	if overlay.engine != nil {
		overlay.engine.Stop()
	}
}

func (overlay *Window) applyWindowMode() {
	if overlay.config.Fullscreen {
		overlay.window.SetFullScreen(true)
		return
	}
	overlay.window.SetFullScreen(false)
	overlay.window.Resize(fyne.NewSize(windowedWidth, windowedHeight))
	overlay.window.CenterOnScreen()
}

func newText(text string, size float32, bold bool) *canvas.Text {
	label := canvas.NewText(text, textColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = size
	label.TextStyle = fyne.TextStyle{Bold: bold}
	return label
}

// breathLayout centers the circle in a box sized for the largest scale so
// the surrounding layout stays still while the circle breathes.
type breathLayout struct {
	scale float32
}

func (layout *breathLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	side := circleRestSize * layout.scale
	if side > size.Width {
		side = size.Width
	}
	if side > size.Height {
		side = size.Height
	}
	if side < 0 {
		side = 0
	}
	objects[0].Resize(fyne.NewSize(side, side))
	objects[0].Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
}

func (layout *breathLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	side := circleRestSize * maxCircleScale
	return fyne.NewSize(side, side)
}
