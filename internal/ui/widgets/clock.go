package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/theme"
)

// ClockTickMsg advances the clock for one widget instance.
type ClockTickMsg struct {
	ID string
}

// Clock shows the current time and date, refreshed every second.
type Clock struct {
	id    string
	width int
	now   time.Time
}

// NewClock creates a clock body for the given instance.
func NewClock(id string, width int) *Clock {
	return &Clock{id: id, width: width, now: time.Now()}
}

func (c *Clock) Init() tea.Cmd {
	return c.tick()
}

func (c *Clock) Update(msg tea.Msg) (Body, tea.Cmd) {
	if t, ok := msg.(ClockTickMsg); ok && t.ID == c.id {
		c.now = time.Now()
		return c, c.tick()
	}
	return c, nil
}

func (c *Clock) View() string {
	timeLine := lipgloss.NewStyle().
		Bold(true).
		Width(c.width).
		Align(lipgloss.Center).
		Render(c.now.Format("15:04:05"))
	dateLine := theme.MutedStyle.
		Width(c.width).
		Align(lipgloss.Center).
		Render(c.now.Format("Monday, Jan 2"))
	return lipgloss.JoinVertical(lipgloss.Left, timeLine, dateLine)
}

func (c *Clock) tick() tea.Cmd {
	id := c.id
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return ClockTickMsg{ID: id}
	})
}
