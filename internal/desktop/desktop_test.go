package desktop

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/store"
	"github.com/dashy/dashy/tests/testutil"
)

// stubSize gives every widget type a 20x8 footprint.
func stubSize(string) (int, int) {
	return 20, 8
}

func newTestSurface(t *testing.T) (*Surface, store.Store) {
	t.Helper()
	s := testutil.NewTestStore(t)
	surf := NewSurface(s, slog.Default(), stubSize)
	surf.SetViewport(Viewport{Width: 80, Height: 24, DockTop: 23})
	surf.randInt = func(n int) int { return n / 2 }
	return surf, s
}

func TestRehydrateSeedsDefaultsOnEmptyStore(t *testing.T) {
	surf, s := newTestSurface(t)
	ctx := context.Background()

	surf.Rehydrate(ctx)

	windows := surf.Windows()
	if len(windows) != 3 {
		t.Fatalf("seeded %d widgets, want 3", len(windows))
	}
	types := []string{"clock", "weather", "quote"}
	for i, w := range windows {
		if w.Instance.Type != types[i] {
			t.Errorf("window %d type %q, want %q", i, w.Instance.Type, types[i])
		}
	}
	if surf.NextID() != 4 {
		t.Errorf("NextID = %d after seeding, want 4", surf.NextID())
	}

	// The seeded set must be persisted immediately.
	var saved []model.WidgetInstance
	ok, err := store.GetJSON(ctx, s, store.KeyWidgets, &saved)
	if err != nil || !ok {
		t.Fatalf("seeded set not persisted: ok=%v err=%v", ok, err)
	}
	if len(saved) != 3 {
		t.Errorf("persisted %d widgets, want 3", len(saved))
	}
}

func TestRehydrateSeedsDefaultsOnMalformedState(t *testing.T) {
	surf, s := newTestSurface(t)
	ctx := context.Background()

	if err := s.Set(ctx, store.KeyWidgets, "{corrupt"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	surf.Rehydrate(ctx)

	if len(surf.Windows()) != 3 {
		t.Fatalf("malformed state did not fall back to defaults")
	}
}

func TestRehydrateRoundTripPreservesOrderAndIDs(t *testing.T) {
	surf, s := newTestSurface(t)
	ctx := context.Background()

	surf.Rehydrate(ctx)
	surf.Create(ctx, "notes", nil)
	surf.Create(ctx, "todo", nil)
	surf.BringToFront(ctx, "widget-1")

	var order []string
	for _, w := range surf.Windows() {
		order = append(order, w.Instance.ID)
	}

	// Reload into a fresh surface over the same store.
	reloaded := NewSurface(s, slog.Default(), stubSize)
	reloaded.SetViewport(Viewport{Width: 80, Height: 24, DockTop: 23})
	reloaded.Rehydrate(ctx)

	windows := reloaded.Windows()
	if len(windows) != len(order) {
		t.Fatalf("reloaded %d windows, want %d", len(windows), len(order))
	}
	for i, w := range windows {
		if w.Instance.ID != order[i] {
			t.Errorf("stack position %d is %q, want %q", i, w.Instance.ID, order[i])
		}
	}
	if got := windows[len(windows)-1].Instance.ID; got != "widget-1" {
		t.Errorf("top of stack is %q, want widget-1", got)
	}
}

func TestRehydrateRecomputesNextID(t *testing.T) {
	surf, s := newTestSurface(t)
	ctx := context.Background()

	saved := []model.WidgetInstance{
		{ID: "widget-2", Type: "clock", Position: model.Position{X: 1, Y: 1}},
		{ID: "widget-9", Type: "notes", Position: model.Position{X: 5, Y: 5}},
		{ID: "not-a-widget-id", Type: "quote", Position: model.Position{X: 9, Y: 9}},
	}
	if err := store.SetJSON(ctx, s, store.KeyWidgets, saved); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	surf.Rehydrate(ctx)

	if surf.NextID() != 10 {
		t.Errorf("NextID = %d, want 10", surf.NextID())
	}
	inst := surf.Create(ctx, "todo", nil)
	if inst.ID != "widget-10" {
		t.Errorf("created ID %q, want widget-10", inst.ID)
	}
}

func TestRehydrateClampsOffscreenWindows(t *testing.T) {
	surf, s := newTestSurface(t)
	ctx := context.Background()

	saved := []model.WidgetInstance{
		{ID: "widget-1", Type: "clock", Position: model.Position{X: 500, Y: 500}},
		{ID: "widget-2", Type: "notes", Position: model.Position{X: -4, Y: -4}},
	}
	if err := store.SetJSON(ctx, s, store.KeyWidgets, saved); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	surf.Rehydrate(ctx)

	for _, w := range surf.Windows() {
		p := w.Instance.Position
		if p.X < 0 || p.X+w.Width > 80 {
			t.Errorf("%s X=%d out of viewport", w.Instance.ID, p.X)
		}
		if p.Y < 0 || p.Y+w.Height+dockMargin > 23 {
			t.Errorf("%s Y=%d overlaps dock", w.Instance.ID, p.Y)
		}
	}
}

func TestCreatePlacesInsideViewport(t *testing.T) {
	surf, _ := newTestSurface(t)
	ctx := context.Background()

	inst := surf.Create(ctx, "notes", nil)
	if inst == nil {
		t.Fatal("Create returned nil")
	}
	p := inst.Position
	if p.X < 0 || p.X+placeWidth > 80 || p.Y < 0 {
		t.Errorf("placement (%d,%d) out of bounds", p.X, p.Y)
	}
}

func TestCreateNotificationTogglesPanel(t *testing.T) {
	surf, _ := newTestSurface(t)
	ctx := context.Background()

	if inst := surf.Create(ctx, TypeNotification, nil); inst != nil {
		t.Errorf("notification type created an instance: %+v", inst)
	}
	if !surf.PanelVisible() {
		t.Error("panel not shown after first toggle")
	}
	surf.Create(ctx, TypeNotification, nil)
	if surf.PanelVisible() {
		t.Error("panel still shown after second toggle")
	}
	if len(surf.Windows()) != 0 {
		t.Errorf("panel toggles added %d windows", len(surf.Windows()))
	}
}

func TestSpawnCenteredLandsNearCenterOnTop(t *testing.T) {
	surf, _ := newTestSurface(t)
	ctx := context.Background()
	surf.Rehydrate(ctx)

	inst := surf.SpawnCentered(ctx, "event-details", map[string]string{"title": "Standup"})
	if inst == nil {
		t.Fatal("SpawnCentered returned nil")
	}

	w, h := stubSize("event-details")
	cx, cy := (80-w)/2, (24-h)/2
	p := inst.Position
	if p.X < cx-spawnJitterX || p.X > cx+spawnJitterX {
		t.Errorf("X=%d not within jitter of center %d", p.X, cx)
	}
	if p.Y < cy-spawnJitterY || p.Y > cy+spawnJitterY {
		t.Errorf("Y=%d not within jitter of center %d", p.Y, cy)
	}

	windows := surf.Windows()
	if windows[len(windows)-1].Instance.ID != inst.ID {
		t.Error("spawned widget is not on top of the stack")
	}
	if inst.Props["title"] != "Standup" {
		t.Errorf("props not carried: %+v", inst.Props)
	}
}

func TestCloseUnknownIDIsNoOp(t *testing.T) {
	surf, _ := newTestSurface(t)
	ctx := context.Background()
	surf.Rehydrate(ctx)

	before := len(surf.Windows())
	surf.Close(ctx, "widget-999")
	if len(surf.Windows()) != before {
		t.Error("closing unknown ID changed the stack")
	}
}

func TestCloseRemovesAndPersists(t *testing.T) {
	surf, s := newTestSurface(t)
	ctx := context.Background()
	surf.Rehydrate(ctx)

	surf.Close(ctx, "widget-2")
	if surf.Has("widget-2") {
		t.Error("widget-2 still present after Close")
	}

	var saved []model.WidgetInstance
	if _, err := store.GetJSON(ctx, s, store.KeyWidgets, &saved); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	for _, inst := range saved {
		if inst.ID == "widget-2" {
			t.Error("widget-2 still persisted after Close")
		}
	}
}

func TestBringToFrontPreservesRelativeOrder(t *testing.T) {
	surf, _ := newTestSurface(t)
	ctx := context.Background()
	surf.Rehydrate(ctx)

	surf.BringToFront(ctx, "widget-1")

	var order []string
	for _, w := range surf.Windows() {
		order = append(order, w.Instance.ID)
	}
	want := []string{"widget-2", "widget-3", "widget-1"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("stack order %v, want %v", order, want)
		}
	}

	// Raising the top window again must not reshuffle anything.
	surf.BringToFront(ctx, "widget-1")
	for i, w := range surf.Windows() {
		if w.Instance.ID != want[i] {
			t.Fatalf("raising top window changed order: %v", order)
		}
	}
}

func TestTopMostAtRespectsStackOrder(t *testing.T) {
	surf, _ := newTestSurface(t)
	ctx := context.Background()

	a := surf.Create(ctx, "notes", nil)
	b := surf.Create(ctx, "todo", nil)
	surf.Move(ctx, a.ID, 10, 5)
	surf.Move(ctx, b.ID, 12, 6) // overlaps a

	if w := surf.TopMostAt(14, 7); w == nil || w.Instance.ID != b.ID {
		t.Errorf("overlap resolved to %v, want %s", w, b.ID)
	}
	if w := surf.TopMostAt(10, 5); w == nil || w.Instance.ID != a.ID {
		t.Errorf("uncovered corner resolved to %v, want %s", w, a.ID)
	}
	if w := surf.TopMostAt(70, 20); w != nil {
		t.Errorf("bare surface hit window %s", w.Instance.ID)
	}
}

func TestSetViewportReclampsWindows(t *testing.T) {
	surf, _ := newTestSurface(t)
	ctx := context.Background()

	inst := surf.Create(ctx, "notes", nil)
	surf.Move(ctx, inst.ID, 55, 10)

	surf.SetViewport(Viewport{Width: 40, Height: 16, DockTop: 15})

	w := surf.Find(inst.ID)
	p := w.Instance.Position
	if p.X+w.Width > 40 {
		t.Errorf("X=%d not re-clamped to narrower viewport", p.X)
	}
	if p.Y+w.Height+dockMargin > 15 {
		t.Errorf("Y=%d not re-clamped above dock", p.Y)
	}
}
