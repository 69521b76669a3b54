package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start  key.Binding
	Toggle key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s", "esc", "x"),
			key.WithHelp("s", "stop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sessionKeys implements help.KeyMap for the session screen.
type sessionKeys struct {
	keyMap
}

func (keys sessionKeys) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Stop, keys.Quit}
}

func (keys sessionKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys.ShortHelp()}
}
