// Package tui implements the terminal front-end using Bubble Tea.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mindful/internal/core/catalog"
	"mindful/internal/core/model"
	"mindful/internal/core/timekeeper"
)

const (
	defaultWidth  = 60
	defaultHeight = 24
	circleBase    = 5
)

// countdownMsg and phaseMsg carry the id of the timer that produced them.
// A message whose id no longer matches the armed timer is dropped.
type countdownMsg struct{ id int }

type phaseMsg struct{ id int }

type sessionItem struct {
	session model.Session
}

func (item sessionItem) Title() string {
	return fmt.Sprintf("%s  %s", item.session.Icon, item.session.Title)
}

func (item sessionItem) Description() string {
	return fmt.Sprintf("%d minutes · %s", item.session.DurationMinutes, item.session.Category)
}

func (item sessionItem) FilterValue() string {
	return item.session.Title
}

// Model is the terminal front-end. It owns the runtime state; both timers
// are tea.Tick commands so every transition runs on the program loop.
type Model struct {
	config      model.RuntimeConfig
	home        catalog.Home
	state       timekeeper.State
	list        list.Model
	progress    progress.Model
	help        help.Model
	keys        keyMap
	styles      sessionStyles
	countdownID int
	phaseID     int
	lastID      int
	width       int
	height      int
}

// Option customizes a Model.
type Option func(*Model)

// WithSession starts session as soon as the program runs.
func WithSession(session model.Session) Option {
	return func(m *Model) {
		m.start(session)
	}
}

// NewModel creates the terminal front-end over sessions.
func NewModel(config model.RuntimeConfig, sessions []model.Session, opts ...Option) Model {
	items := make([]list.Item, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, sessionItem{session: session})
	}

	home := catalog.HomeContent()
	sessionList := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight-8)
	sessionList.Title = home.SectionTitle
	sessionList.SetShowStatusBar(false)
	sessionList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{defaultKeyMap().Start}
	}

	m := Model{
		config:   config.Normalize(),
		home:     home,
		list:     sessionList,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		keys:     defaultKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init arms the timers of a session started through WithSession.
func (m Model) Init() tea.Cmd {
	return m.armedCmds()
}

// Snapshot returns the runtime state.
func (m Model) Snapshot() timekeeper.Snapshot {
	return m.state.Snapshot()
}

// Update handles input and timer messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-8)
		m.progress.Width = min(msg.Width-8, 60)
		return m, nil

	case countdownMsg:
		if msg.id == 0 || msg.id != m.countdownID {
			return m, nil
		}
		m.state.Tick()
		m.settle()
		if m.countdownID == 0 {
			return m, nil
		}
		return m, tickAfter(m.config.TickInterval, countdownMsg{id: m.countdownID})

	case phaseMsg:
		if msg.id == 0 || msg.id != m.phaseID {
			return m, nil
		}
		m.state.AdvancePhase()
		m.settle()
		if m.phaseID == 0 {
			return m, nil
		}
		return m, tickAfter(m.config.PhaseInterval, phaseMsg{id: m.phaseID})

	case tea.KeyMsg:
		if m.state.Status() == timekeeper.StatusRunning {
			return m.updateSession(msg)
		}
		return m.updatePicker(msg)
	}

	if m.state.Status() == timekeeper.StatusIdle {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.list.FilterState() == list.Filtering
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case !filtering && key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case !filtering && key.Matches(msg, m.keys.Start):
		if item, ok := m.list.SelectedItem().(sessionItem); ok {
			m.start(item.session)
			return m, m.armedCmds()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state.Stop()
		m.disarm()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.state.Toggle()
		m.rearm()
		return m, m.armedCmds()
	case key.Matches(msg, m.keys.Stop):
		m.state.Stop()
		m.disarm()
		return m, nil
	}
	return m, nil
}

func (m *Model) start(session model.Session) {
	m.state.Start(session)
	m.styles = stylesFor(session)
	from, to := session.Color.Hex()
	width := m.progress.Width
	m.progress = progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())
	if width > 0 {
		m.progress.Width = width
	}
	m.rearm()
}

// rearm disarms both timers and arms fresh ones for the conditions that hold.
func (m *Model) rearm() {
	m.disarm()
	if m.state.CountdownArmed() {
		m.lastID++
		m.countdownID = m.lastID
	}
	if m.state.PhaseArmed() {
		m.lastID++
		m.phaseID = m.lastID
	}
}

func (m *Model) disarm() {
	m.countdownID = 0
	m.phaseID = 0
}

// settle disarms timers whose condition stopped holding.
func (m *Model) settle() {
	if !m.state.CountdownArmed() {
		m.countdownID = 0
	}
	if !m.state.PhaseArmed() {
		m.phaseID = 0
	}
}

func (m Model) armedCmds() tea.Cmd {
	var cmds []tea.Cmd
	if m.countdownID != 0 {
		cmds = append(cmds, tickAfter(m.config.TickInterval, countdownMsg{id: m.countdownID}))
	}
	if m.phaseID != 0 {
		cmds = append(cmds, tickAfter(m.config.PhaseInterval, phaseMsg{id: m.phaseID}))
	}
	return tea.Batch(cmds...)
}

func tickAfter(interval time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return msg
	})
}

// View renders the picker or the session screen.
func (m Model) View() string {
	if m.state.Status() == timekeeper.StatusRunning {
		return m.viewSession()
	}
	return m.viewPicker()
}

func (m Model) viewPicker() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render(m.home.Heading),
		taglineStyle.Render(m.home.Tagline),
	)
	stats := cardStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left,
			statLabelStyle.Render(m.home.Streak.Label),
			streakStyle.Render(m.home.Streak.Value),
		),
		"    ",
		lipgloss.JoinVertical(lipgloss.Right,
			statLabelStyle.Render(m.home.TotalTime.Label),
			totalStyle.Render(m.home.TotalTime.Value),
		),
	))
	tip := tipStyle.Width(max(m.width-4, 20)).Render(m.home.TipTitle + "  " + m.home.Tip)

	return lipgloss.JoinVertical(lipgloss.Left, header, stats, m.list.View(), tip)
}

func (m Model) viewSession() string {
	snapshot := m.state.Snapshot()
	session := snapshot.Session

	sections := []string{
		session.Icon,
		m.styles.title.Render(session.Title),
	}
	if snapshot.ShowsBreathing() {
		sections = append(sections,
			"",
			m.styles.phase.Render(snapshot.Phase.Instruction()),
			m.styles.circle.Render(renderCircle(snapshot.Phase.Scale())),
		)
	}

	status := "⏸ playing"
	if !snapshot.Playing {
		status = "▶ paused"
	}
	if snapshot.Remaining == 0 {
		status = "✓ complete"
	}

	sections = append(sections,
		clockStyle.Render(snapshot.Clock()),
		m.progress.ViewAs(snapshot.Progress()),
		taglineStyle.Render(status),
		"",
		m.help.View(sessionKeys{m.keys}),
	)

	body := m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderCircle draws a filled disc whose diameter follows scale. The block is
// padded to the largest size so the layout does not jump between phases.
func renderCircle(scale float32) string {
	maxRows := int(math.Round(circleBase * 1.5))
	rows := int(math.Round(float64(circleBase) * float64(scale)))
	if rows < 1 {
		rows = 1
	}
	radius := float64(rows) / 2
	// Terminal cells are about twice as tall as wide.
	width := rows * 2
	maxWidth := maxRows * 2

	lines := make([]string, 0, maxRows)
	padTop := (maxRows - rows) / 2
	for i := 0; i < padTop; i++ {
		lines = append(lines, strings.Repeat(" ", maxWidth))
	}
	for row := 0; row < rows; row++ {
		dy := float64(row) + 0.5 - radius
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", (maxWidth-width)/2))
		for col := 0; col < width; col++ {
			dx := (float64(col)+0.5)/2 - radius
			if dx*dx+dy*dy <= radius*radius {
				line.WriteString("█")
			} else {
				line.WriteString(" ")
			}
		}
		line.WriteString(strings.Repeat(" ", maxWidth-width-(maxWidth-width)/2))
		lines = append(lines, line.String())
	}
	for len(lines) < maxRows {
		lines = append(lines, strings.Repeat(" ", maxWidth))
	}
	return strings.Join(lines, "\n")
}
