package tray

import (
	"fmt"

	"mindful/internal/core/model"

	"fyne.io/fyne/v2"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen        func()
	OnStart       func(model.Session)
	OnTogglePause func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Manager handles system tray state.
type Manager struct {
	host        MenuHost
	callbacks   Callbacks
	sessions    []model.Session
	statusItem  *fyne.MenuItem
	openItem    *fyne.MenuItem
	quickItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	stopItem    *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	menu        *fyne.Menu
	running     bool
	paused      bool
	statusLabel string
}

// New creates a tray manager offering the given sessions.
func New(host MenuHost, sessions []model.Session, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:        host,
		callbacks:   callbacks,
		sessions:    append([]model.Session(nil), sessions...),
		statusLabel: "ready",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.openItem = fyne.NewMenuItem("Open Mindful", func() {
		if manager.callbacks.OnOpen != nil {
			manager.callbacks.OnOpen()
		}
	})

	quick := make([]*fyne.MenuItem, 0, len(manager.sessions))
	for _, session := range manager.sessions {
		label := fmt.Sprintf("%s %s (%d min)", session.Icon, session.Title, session.DurationMinutes)
		quick = append(quick, fyne.NewMenuItem(label, func() {
			if manager.callbacks.OnStart != nil {
				manager.callbacks.OnStart(session)
			}
		}))
	}
	manager.quickItem = fyne.NewMenuItem("Quick sessions", nil)
	manager.quickItem.ChildMenu = fyne.NewMenu("", quick...)

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	manager.stopItem = fyne.NewMenuItem("Stop session", func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})

	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refresh()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refresh()
}

// SetSession updates the session-related items.
func (manager *Manager) SetSession(running, playing bool) {
	manager.running = running
	manager.paused = running && !playing
	if !running {
		manager.statusLabel = "ready"
	}
	manager.refresh()
}

// Menu returns the menu currently installed in the tray.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refresh() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)

	if manager.paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.pauseItem.Disabled = !manager.running
	manager.stopItem.Disabled = !manager.running

	manager.menu = fyne.NewMenu("Mindful",
		manager.statusItem,
		manager.openItem,
		manager.quickItem,
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	)
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}
