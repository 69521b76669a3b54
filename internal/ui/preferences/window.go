package preferences

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	phase         *widget.Select
	launchAtLogin *widget.Check
	opacity       binding.Float
	fullscreen    *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Mindful Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		phase:         widget.NewSelect(phaseOptions(), nil),
		launchAtLogin: widget.NewCheck("Launch at login", nil),
		opacity:       binding.NewFloat(),
		fullscreen:    widget.NewCheck("Fullscreen sessions", nil),
	}

	opacitySlider := widget.NewSliderWithData(MinOverlayOpacity, MaxOverlayOpacity, prefs.opacity)
	opacitySlider.Step = 0.01
	opacityLabel := widget.NewLabel("")
	prefs.opacity.AddListener(binding.NewDataListener(func() {
		value, _ := prefs.opacity.Get()
		opacityLabel.SetText(opacityPercent(value))
	}))

	form := widget.NewForm(
		widget.NewFormItem("Breath phase", prefs.phase),
		widget.NewFormItem("Opacity", opacitySlider),
		widget.NewFormItem("", opacityLabel),
		widget.NewFormItem("", prefs.fullscreen),
		widget.NewFormItem("", prefs.launchAtLogin),
	)
	form.SubmitText = "Save"
	form.CancelText = "Cancel"
	form.OnSubmit = prefs.handleSave
	form.OnCancel = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	window.SetContent(form)
	window.Resize(fyne.NewSize(380, 280))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved values.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.phase.SetSelected(phaseLabel(settings.PhaseDuration))
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
	_ = prefs.opacity.Set(settings.OverlayOpacity)
	prefs.fullscreen.SetChecked(settings.Fullscreen)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if duration, ok := parsePhaseLabel(prefs.phase.Selected); ok {
		settings.PhaseDuration = duration
	}
	if opacity, err := prefs.opacity.Get(); err == nil && ValidOpacity(opacity) {
		settings.OverlayOpacity = opacity
	}
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked
	settings.Fullscreen = prefs.fullscreen.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func phaseOptions() []string {
	var options []string
	for duration := MinPhaseDuration; duration <= MaxPhaseDuration; duration += time.Second {
		options = append(options, phaseLabel(duration))
	}
	return options
}

func phaseLabel(duration time.Duration) string {
	return fmt.Sprintf("%d sec", int(duration/time.Second))
}

func parsePhaseLabel(label string) (time.Duration, bool) {
	var seconds int
	if _, err := fmt.Sscanf(label, "%d sec", &seconds); err != nil {
		return 0, false
	}
	duration := time.Duration(seconds) * time.Second
	return duration, ValidPhaseDuration(duration)
}

func opacityPercent(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}
