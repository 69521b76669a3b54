// Package picker renders the home screen with the session list.
package picker

import (
	"fmt"
	"log"

	"mindful/internal/core/catalog"
	"mindful/internal/core/model"
	"mindful/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines picker action handlers.
type Callbacks struct {
	OnSelect      func(model.Session)
	OnPreferences func()
}

// Window is the home screen.
type Window struct {
	window    fyne.Window
	callbacks Callbacks
	sessions  []model.Session
	buttons   []*widget.Button
	settings  *widget.Button
}

// New creates the picker window for the given sessions.
func New(app fyne.App, title string, home catalog.Home, sessions []model.Session, callbacks Callbacks) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	picker := &Window{
		window:    window,
		callbacks: callbacks,
		sessions:  append([]model.Session(nil), sessions...),
	}

	heading := widget.NewLabelWithStyle(home.Heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	tagline := widget.NewLabelWithStyle(home.Tagline, fyne.TextAlignCenter, fyne.TextStyle{})
	picker.settings = widget.NewButton("Settings", func() {
		if picker.callbacks.OnPreferences != nil {
			picker.callbacks.OnPreferences()
		}
	})
	header := container.NewBorder(nil, nil, nil, picker.settings, container.NewVBox(heading, tagline))

	stats := widget.NewCard("", "", container.NewGridWithColumns(2,
		statBlock(home.Streak, fyne.TextAlignLeading),
		statBlock(home.TotalTime, fyne.TextAlignTrailing),
	))

	list := container.NewVBox()
	for _, session := range picker.sessions {
		list.Add(picker.sessionButton(session))
	}

	tipText := widget.NewLabel(home.Tip)
	tipText.Wrapping = fyne.TextWrapWord
	tip := widget.NewCard(home.TipTitle, "", tipText)

	content := container.NewVBox(
		header,
		stats,
		widget.NewLabelWithStyle(home.SectionTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		list,
		layout.NewSpacer(),
		tip,
	)
	window.SetContent(container.NewVScroll(container.NewPadded(content)))
	window.Resize(fyne.NewSize(420, 720))

	return picker
}

// Window exposes the underlying Fyne window.
func (picker *Window) Window() fyne.Window {
	return picker.window
}

// Show displays the picker.
func (picker *Window) Show() {
	picker.window.Show()
	picker.window.RequestFocus()
}

// Hide hides the picker.
func (picker *Window) Hide() {
	picker.window.Hide()
}

func (picker *Window) sessionButton(session model.Session) *widget.Button {
	label := fmt.Sprintf("%s  %s\n%s  ›", session.Icon, session.Title, minutesLabel(session.DurationMinutes))
	badge, err := resources.SessionBadge(session)
	if err != nil {
		log.Printf("session badge: %v", err)
	}
	button := widget.NewButtonWithIcon(label, badge, func() {
		if picker.callbacks.OnSelect != nil {
			picker.callbacks.OnSelect(session)
		}
	})
	button.Alignment = widget.ButtonAlignLeading
	picker.buttons = append(picker.buttons, button)
	return button
}

func statBlock(stat catalog.Stat, align fyne.TextAlign) fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle(stat.Label, align, fyne.TextStyle{Italic: true}),
		widget.NewLabelWithStyle(stat.Value, align, fyne.TextStyle{Bold: true}),
	)
}

func minutesLabel(minutes int) string {
	return fmt.Sprintf("%d minutes", minutes)
}
