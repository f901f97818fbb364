package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/theme"
)

// QuoteTickMsg rotates the quote for one widget instance.
type QuoteTickMsg struct {
	ID string
}

// quotes is the built-in rotation set.
var quotes = []struct {
	text   string
	author string
}{
	{"Simplicity is the ultimate sophistication.", "Leonardo da Vinci"},
	{"The best way to predict the future is to invent it.", "Alan Kay"},
	{"Make it work, make it right, make it fast.", "Kent Beck"},
	{"Programs must be written for people to read.", "Harold Abelson"},
	{"First, solve the problem. Then, write the code.", "John Johnson"},
	{"Deleted code is debugged code.", "Jeff Sickel"},
}

// Quote cycles through the built-in quote set on a configurable
// interval.
type Quote struct {
	id       string
	width    int
	height   int
	interval time.Duration
	index    int
}

// NewQuote creates a quote body. rotationSec below 1 falls back to 30
// seconds.
func NewQuote(id string, width, height, rotationSec int) *Quote {
	if rotationSec < 1 {
		rotationSec = 30
	}
	return &Quote{
		id:       id,
		width:    width,
		height:   height,
		interval: time.Duration(rotationSec) * time.Second,
	}
}

func (q *Quote) Init() tea.Cmd {
	return q.tick()
}

func (q *Quote) Update(msg tea.Msg) (Body, tea.Cmd) {
	if t, ok := msg.(QuoteTickMsg); ok && t.ID == q.id {
		q.index = (q.index + 1) % len(quotes)
		return q, q.tick()
	}
	return q, nil
}

func (q *Quote) View() string {
	entry := quotes[q.index]
	text := lipgloss.NewStyle().
		Italic(true).
		Width(q.width).
		Align(lipgloss.Center).
		Render("“" + entry.text + "”")
	author := theme.MutedStyle.
		Width(q.width).
		Align(lipgloss.Center).
		Render("— " + entry.author)
	return lipgloss.JoinVertical(lipgloss.Left, text, author)
}

func (q *Quote) tick() tea.Cmd {
	id := q.id
	return tea.Tick(q.interval, func(time.Time) tea.Msg {
		return QuoteTickMsg{ID: id}
	})
}
