package widgets

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/store"
	"github.com/dashy/dashy/internal/theme"
)

// NotesLoadedMsg carries the persisted notes text for one instance.
type NotesLoadedMsg struct {
	ID   string
	Text string
}

// notesSavedMsg confirms a persist; it exists so the save command has a
// message to return.
type notesSavedMsg struct {
	ID string
}

// Notes is a free-text scratchpad persisted as a single string. Enter
// edit mode with e or enter; esc saves and leaves edit mode.
type Notes struct {
	id   string
	deps Deps
	ta   textarea.Model
}

// NewNotes creates a notes body sized to the given inner area.
func NewNotes(id string, width, height int, deps Deps) *Notes {
	ta := textarea.New()
	ta.Placeholder = "press e to edit..."
	ta.SetWidth(width)
	ta.SetHeight(height - 1)
	ta.ShowLineNumbers = false
	return &Notes{id: id, deps: deps, ta: ta}
}

func (n *Notes) Init() tea.Cmd {
	id := n.id
	s := n.deps.Store
	return func() tea.Msg {
		text, err := s.Get(context.Background(), store.KeyNotes)
		if err != nil {
			return NotesLoadedMsg{ID: id}
		}
		return NotesLoadedMsg{ID: id, Text: text}
	}
}

func (n *Notes) Update(msg tea.Msg) (Body, tea.Cmd) {
	switch msg := msg.(type) {
	case NotesLoadedMsg:
		if msg.ID == n.id {
			n.ta.SetValue(msg.Text)
		}
		return n, nil

	case notesSavedMsg:
		return n, nil

	case tea.KeyMsg:
		if n.ta.Focused() {
			if msg.String() == "esc" {
				n.ta.Blur()
				return n, n.save()
			}
			var cmd tea.Cmd
			n.ta, cmd = n.ta.Update(msg)
			return n, cmd
		}
		switch msg.String() {
		case "e", "enter":
			return n, n.ta.Focus()
		}
	}
	return n, nil
}

func (n *Notes) View() string {
	hint := theme.HelpStyle.Render("esc save")
	if !n.ta.Focused() {
		hint = theme.HelpStyle.Render("e edit")
	}
	return lipgloss.JoinVertical(lipgloss.Left, n.ta.View(), hint)
}

// Editing reports whether the textarea owns key input.
func (n *Notes) Editing() bool {
	return n.ta.Focused()
}

// save persists the full text snapshot, best-effort.
func (n *Notes) save() tea.Cmd {
	id := n.id
	s := n.deps.Store
	log := n.deps.Log
	text := n.ta.Value()
	return func() tea.Msg {
		if err := s.Set(context.Background(), store.KeyNotes, text); err != nil {
			log.Warn("persisting notes", "error", err)
		}
		return notesSavedMsg{ID: id}
	}
}
