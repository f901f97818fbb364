// Package dock renders the launcher bar pinned to the bottom row of
// the dashboard and maps pointer presses back to launcher entries.
package dock

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dashy/dashy/internal/theme"
)

// Item is one launcher entry: the widget type it creates and the key
// and label shown in the bar.
type Item struct {
	Type  string
	Key   string
	Label string
}

// defaultItems is the fixed launcher set. The notifications entry
// toggles the panel instead of creating a widget.
var defaultItems = []Item{
	{Type: "clock", Key: "1", Label: "clock"},
	{Type: "notes", Key: "2", Label: "notes"},
	{Type: "weather", Key: "3", Label: "weather"},
	{Type: "calculator", Key: "4", Label: "calc"},
	{Type: "todo", Key: "5", Label: "todo"},
	{Type: "search", Key: "6", Label: "search"},
	{Type: "quote", Key: "7", Label: "quote"},
	{Type: "notification", Key: "n", Label: "alerts"},
}

// Model is the dock bar.
type Model struct {
	width  int
	items  []Item
	unread int
}

// New creates a dock sized to the given width.
func New(width int) Model {
	return Model{width: width, items: defaultItems}
}

// SetWidth updates the bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetUnread updates the unread badge on the notifications entry.
func (m *Model) SetUnread(n int) {
	m.unread = n
}

// Items returns the launcher entries in display order.
func (m Model) Items() []Item {
	return m.items
}

// View renders the bar across the full width.
func (m Model) View() string {
	var segments string
	for _, it := range m.items {
		style := theme.DockItemStyle
		if it.Type == "notification" && m.unread > 0 {
			style = theme.DockItemActiveStyle
		}
		segments += style.Render(m.segmentText(it))
	}
	return theme.DockStyle.Width(m.width).MaxHeight(1).Render(segments)
}

// ItemAt maps a pointer column on the dock row back to the launcher
// entry under it. The walk mirrors View's layout exactly.
func (m Model) ItemAt(x int) (Item, bool) {
	// DockStyle pads one cell on the left.
	pos := 1
	for _, it := range m.items {
		w := lipgloss.Width(theme.DockItemStyle.Render(m.segmentText(it)))
		if x >= pos && x < pos+w {
			return it, true
		}
		pos += w
	}
	return Item{}, false
}

// segmentText builds the text for one entry, with the unread badge on
// the notifications entry.
func (m Model) segmentText(it Item) string {
	text := it.Key + " " + it.Label
	if it.Type == "notification" && m.unread > 0 {
		text = fmt.Sprintf("%s (%d)", text, m.unread)
	}
	return text
}
