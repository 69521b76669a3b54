package tui

import (
	"github.com/charmbracelet/lipgloss"

	"mindful/internal/core/model"
)

const (
	brandColor   = "#007AFF"
	accentColor  = "#AF52DE"
	dimColor     = "#8E8E93"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(brandColor)).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(dimColor)).
			Padding(0, 2)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(brandColor)).
			Bold(true)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Bold(true)

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor)).
			Italic(true)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0)
)

// sessionStyles are derived from the gradient of the running session.
type sessionStyles struct {
	title  lipgloss.Style
	phase  lipgloss.Style
	circle lipgloss.Style
	frame  lipgloss.Style
}

func stylesFor(session model.Session) sessionStyles {
	from, to := session.Color.Hex()
	return sessionStyles{
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color(from)).Bold(true),
		phase:  lipgloss.NewStyle().Foreground(lipgloss.Color(to)).Bold(true),
		circle: lipgloss.NewStyle().Foreground(lipgloss.Color(to)),
		frame: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(from)).
			Padding(1, 4),
	}
}
