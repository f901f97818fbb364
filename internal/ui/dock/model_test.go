package dock

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dashy/dashy/internal/theme"
)

func TestViewFillsWidth(t *testing.T) {
	m := New(80)

	view := m.View()
	if h := lipgloss.Height(view); h != 1 {
		t.Errorf("dock height = %d, want 1", h)
	}
	if w := lipgloss.Width(view); w != 80 {
		t.Errorf("dock width = %d, want 80", w)
	}
}

func TestViewShowsUnreadBadge(t *testing.T) {
	m := New(80)

	if strings.Contains(m.View(), "(") {
		t.Error("badge shown with zero unread")
	}

	m.SetUnread(3)
	if !strings.Contains(m.View(), "(3)") {
		t.Error("unread badge missing")
	}
}

func TestItemAtMatchesLayout(t *testing.T) {
	m := New(120)

	// Walk the same segments View lays out and probe the first, middle,
	// and last column of each.
	pos := 1
	for _, it := range m.Items() {
		w := lipgloss.Width(theme.DockItemStyle.Render(m.segmentText(it)))
		for _, x := range []int{pos, pos + w/2, pos + w - 1} {
			got, ok := m.ItemAt(x)
			if !ok {
				t.Errorf("ItemAt(%d) found nothing, want %q", x, it.Type)
				continue
			}
			if got.Type != it.Type {
				t.Errorf("ItemAt(%d) = %q, want %q", x, got.Type, it.Type)
			}
		}
		pos += w
	}
}

func TestItemAtOutsideEntries(t *testing.T) {
	m := New(120)

	if _, ok := m.ItemAt(0); ok {
		t.Error("matched the left padding cell")
	}
	if _, ok := m.ItemAt(119); ok {
		t.Error("matched trailing empty space")
	}
}

func TestItemAtStableWithUnreadBadge(t *testing.T) {
	m := New(120)
	m.SetUnread(12)

	// The badge widens the notifications segment; hits inside the badge
	// must still resolve to it.
	pos := 1
	var alertsStart, alertsEnd int
	for _, it := range m.Items() {
		w := lipgloss.Width(theme.DockItemStyle.Render(m.segmentText(it)))
		if it.Type == "notification" {
			alertsStart, alertsEnd = pos, pos+w
		}
		pos += w
	}
	if alertsEnd == 0 {
		t.Fatal("notifications entry not found")
	}

	got, ok := m.ItemAt(alertsEnd - 1)
	if !ok || got.Type != "notification" {
		t.Errorf("ItemAt(%d) = %+v, %v", alertsEnd-1, got, ok)
	}
	if got, ok := m.ItemAt(alertsStart); !ok || got.Type != "notification" {
		t.Errorf("ItemAt(%d) = %+v, %v", alertsStart, got, ok)
	}
}
