package tui

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdout is not an interactive terminal.
var ErrNotTerminal = errors.New("terminal front-end needs an interactive terminal")

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the program in alternate screen mode.
func Run(m Model) error {
	if !IsTTY() {
		return ErrNotTerminal
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
