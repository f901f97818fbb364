// Package panel renders the notification center overlay: the record
// list with unread markers, per-record actions, and the alert
// permission line.
package panel

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/notify"
	"github.com/dashy/dashy/internal/theme"
)

// OpenMsg asks the root model to open a notification: mark it read,
// stage its action, and route it to a content widget.
type OpenMsg struct {
	Record model.NotificationRecord
}

// ClearMsg asks the root model to remove one record.
type ClearMsg struct {
	ID string
}

// ClearAllMsg asks the root model to remove every record.
type ClearAllMsg struct{}

// headerRows is the panel chrome above the first record row: the
// padded border, the title line, and the permission line.
const headerRows = 4

// Model is the notification panel overlay.
type Model struct {
	center *notify.Center
	width  int
	height int
	cursor int
}

// New creates a panel over the given center.
func New(center *notify.Center, width, height int) Model {
	return Model{center: center, width: width, height: height}
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles panel-local key input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	records := m.center.Records()
	switch key.String() {
	case "j", "down":
		if m.cursor < len(records)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(records) {
			rec := records[m.cursor]
			return m, func() tea.Msg { return OpenMsg{Record: rec} }
		}
	case "x", "d":
		if m.cursor < len(records) {
			id := records[m.cursor].ID
			if m.cursor == len(records)-1 && m.cursor > 0 {
				m.cursor--
			}
			return m, func() tea.Msg { return ClearMsg{ID: id} }
		}
	case "C":
		m.cursor = 0
		return m, func() tea.Msg { return ClearAllMsg{} }
	}
	return m, nil
}

// RecordAt maps a pointer row inside the panel back to the record
// rendered there, so clicks open notifications like enter does.
func (m Model) RecordAt(localY int) (model.NotificationRecord, bool) {
	records := m.center.Records()
	idx := localY - headerRows
	if idx < 0 || idx >= len(records) {
		return model.NotificationRecord{}, false
	}
	return records[idx], true
}

// View renders the panel.
func (m Model) View() string {
	records := m.center.Records()

	title := lipgloss.NewStyle().Bold(true).Render("Notifications")
	if n := m.center.UnreadCount(); n > 0 {
		title += " " + theme.UnreadStyle.Render(fmt.Sprintf("(%d unread)", n))
	}
	permission := theme.MutedStyle.Render("alerts: " + m.center.Permission().String())

	lines := []string{title, permission}

	if len(records) == 0 {
		lines = append(lines, theme.MutedStyle.Render("all quiet"))
	}

	innerW := m.width - 6
	visible := m.height - headerRows - 3
	for i, rec := range records {
		if i >= visible {
			lines = append(lines, theme.MutedStyle.Render(fmt.Sprintf("+%d more", len(records)-i)))
			break
		}
		lines = append(lines, m.renderRecord(rec, i == m.cursor, innerW))
	}

	lines = append(lines, theme.HelpStyle.Render("enter open · x clear · C clear all"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return theme.PanelStyle.Width(m.width - 2).Render(content)
}

// renderRecord draws one record on a single row.
func (m Model) renderRecord(rec model.NotificationRecord, selected bool, width int) string {
	marker := "  "
	if !rec.Read {
		marker = theme.UnreadStyle.Render("• ")
	}
	badge := theme.NotificationTypeStyle(rec.Type).Render(string(rec.Type))
	age := theme.MutedStyle.Render(relativeAge(rec.Timestamp))

	text := rec.Title
	if rec.Message != "" {
		text += " " + theme.MutedStyle.Render(rec.Message)
	}

	line := marker + badge + " " + text + " " + age
	line = ansi.Truncate(line, width, "…")
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// relativeAge formats a timestamp as a short age label.
func relativeAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
