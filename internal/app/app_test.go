package app

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/notify"
	appsync "github.com/dashy/dashy/internal/sync"
	"github.com/dashy/dashy/internal/ui/panel"
	"github.com/dashy/dashy/tests/testutil"
)

// newTestModel builds a root model over an in-memory store and sizes
// it, which rehydrates and seeds the default widget set.
func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := &model.AppConfig{
		Display: model.DisplayConfig{QuoteRotationSec: 30},
	}
	m := New(cfg, testutil.NewTestStore(t), slog.Default())
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// update drives one message through Model.Update and returns the
// resulting root model.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want app.Model", updated)
	}
	return next
}

func TestPollResultOpensContentWidget(t *testing.T) {
	m := newTestModel(t)
	seeded := len(m.surface.Windows())

	m = update(t, m, appsync.PollResultMsg{
		Name: "campus feed",
		Records: []notify.Incoming{{
			Title:   "New event",
			Message: "Standup was scheduled",
			Type:    model.NotificationEvent,
			ActionData: model.ActionData{
				"eventTitle":    "Standup",
				"eventLocation": "Room 4",
			},
		}},
	})

	if got := m.center.UnreadCount(); got != 1 {
		t.Fatalf("unread after poll = %d, want 1", got)
	}
	rec := m.center.Records()[0]

	m = update(t, m, panel.OpenMsg{Record: rec})

	if !m.center.Records()[0].Read {
		t.Error("opened record is still unread")
	}
	if got := m.center.UnreadCount(); got != 0 {
		t.Errorf("unread after open = %d, want 0", got)
	}
	if _, ok := m.center.TakePendingAction(); ok {
		t.Error("pending action slot not consumed by dispatch")
	}

	windows := m.surface.Windows()
	if len(windows) != seeded+1 {
		t.Fatalf("window count = %d, want %d", len(windows), seeded+1)
	}
	top := windows[len(windows)-1]
	if top.Instance.Type != "event-details" {
		t.Errorf("spawned widget type = %q, want event-details", top.Instance.Type)
	}
	if got := m.registry.Title(top.Instance); got != "Standup" {
		t.Errorf("spawned widget title = %q, want Standup", got)
	}
	if _, ok := m.bodies[top.Instance.ID]; !ok {
		t.Error("spawned widget has no registered body")
	}
}

func TestOpenWithoutPayloadOnlyMarksRead(t *testing.T) {
	m := newTestModel(t)
	seeded := len(m.surface.Windows())

	m = update(t, m, appsync.PollResultMsg{
		Records: []notify.Incoming{{Title: "Heads up", Message: "nothing actionable"}},
	})
	rec := m.center.Records()[0]

	m = update(t, m, panel.OpenMsg{Record: rec})

	if !m.center.Records()[0].Read {
		t.Error("record is still unread")
	}
	if got := len(m.surface.Windows()); got != seeded {
		t.Errorf("window count = %d, want %d (no widget for a payload-less record)", got, seeded)
	}
}

func TestCreateWidgetKeyRegistersBody(t *testing.T) {
	m := newTestModel(t)
	seeded := len(m.surface.Windows())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	windows := m.surface.Windows()
	if len(windows) != seeded+1 {
		t.Fatalf("window count = %d, want %d", len(windows), seeded+1)
	}
	top := windows[len(windows)-1]
	if top.Instance.Type != "notes" {
		t.Errorf("created widget type = %q, want notes", top.Instance.Type)
	}
	if _, ok := m.bodies[top.Instance.ID]; !ok {
		t.Error("created widget has no registered body")
	}
	if !strings.Contains(m.status, "Notes") {
		t.Errorf("status = %q, want a Notes confirmation", m.status)
	}
}

func TestClosePressRemovesWindowAndBody(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	windows := m.surface.Windows()
	top := windows[len(windows)-1]
	id := top.Instance.ID
	pos := top.Instance.Position

	m = update(t, m, tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      pos.X + 1,
		Y:      pos.Y,
	})

	if m.surface.Find(id) != nil {
		t.Error("window still on the surface after close press")
	}
	if _, ok := m.bodies[id]; ok {
		t.Error("body still registered after close press")
	}
}

func TestHeaderPressDragsWindow(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	windows := m.surface.Windows()
	id := windows[len(windows)-1].Instance.ID
	m.surface.Move(context.Background(), id, 10, 5)

	// Press past the close control so the drag starts.
	m = update(t, m, tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      15,
		Y:      5,
	})
	if m.dragID != id {
		t.Fatalf("dragID = %q, want %q", m.dragID, id)
	}

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionMotion, X: 17, Y: 7})
	w := m.surface.Find(id)
	if w == nil {
		t.Fatal("dragged window disappeared")
	}
	if got := w.Instance.Position; got.X != 12 || got.Y != 7 {
		t.Errorf("position after drag = (%d,%d), want (12,7)", got.X, got.Y)
	}

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease})
	if m.dragID != "" {
		t.Errorf("dragID after release = %q, want empty", m.dragID)
	}
}
