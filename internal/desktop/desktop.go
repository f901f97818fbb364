// Package desktop owns the dashboard surface state: which widgets
// exist, where they sit, their stacking order, and how the set is
// persisted. It has no rendering opinions; the UI layer reads window
// geometry from here and reports pointer events back.
package desktop

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/store"
)

// Placement constants, in surface cells. Random placement uses a fixed
// footprint regardless of the widget's real size, so a later resize of
// a widget type never shifts stored positions.
const (
	placePadding = 2
	placeWidth   = 30
	placeHeight  = 10

	// spawnJitterX/Y bound the random offset applied to
	// notification-spawned widgets around the viewport center.
	spawnJitterX = 4
	spawnJitterY = 2
)

// TypeNotification is the reserved widget type that toggles the
// notification panel instead of creating a surface entry. The panel is
// a singleton, not a collection member.
const TypeNotification = "notification"

// SizeFunc resolves a widget type to its rendered footprint. The
// render registry provides this so the surface stays independent of
// the UI layer.
type SizeFunc func(widgetType string) (width, height int)

// Viewport describes the drawable area. DockTop is the first row
// occupied by the dock, or 0 when no dock is present.
type Viewport struct {
	Width   int
	Height  int
	DockTop int
}

// Surface is the single source of truth for the active widget set.
// Stacking order is the window slice order, bottom to top; bring-to-
// front moves an entry to the end, so full relative order is kept for
// background windows too.
type Surface struct {
	store  store.Store
	log    *slog.Logger
	sizeOf SizeFunc

	vp           Viewport
	windows      []*Window
	nextID       int
	panelVisible bool

	// randInt is swappable so placement stays testable.
	randInt func(n int) int
}

// NewSurface creates an empty surface. Call SetViewport and Rehydrate
// before use.
func NewSurface(s store.Store, logger *slog.Logger, sizeOf SizeFunc) *Surface {
	if logger == nil {
		logger = slog.Default()
	}
	return &Surface{
		store:   s,
		log:     logger,
		sizeOf:  sizeOf,
		vp:      Viewport{Width: 80, Height: 24},
		nextID:  1,
		randInt: rand.IntN,
	}
}

// SetViewport updates the drawable area and re-clamps every window so
// nothing is stranded off-screen or under the dock after a resize.
func (s *Surface) SetViewport(vp Viewport) {
	s.vp = vp
	for _, w := range s.windows {
		x, y := ClampPosition(w.Instance.Position.X, w.Instance.Position.Y, w.Width, w.Height, vp)
		w.Instance.Position = model.Position{X: x, Y: y}
	}
}

// Viewport returns the current drawable area.
func (s *Surface) Viewport() Viewport {
	return s.vp
}

// Rehydrate loads the persisted widget list. Absent or malformed data
// seeds the default set (clock, weather, quote). The ID counter is
// recomputed as 1 + the highest persisted numeric suffix so IDs are
// never reused after a reload.
func (s *Surface) Rehydrate(ctx context.Context) {
	var saved []model.WidgetInstance
	ok, err := store.GetJSON(ctx, s.store, store.KeyWidgets, &saved)
	if err != nil {
		s.log.Warn("discarding malformed widget state", "error", err)
		ok = false
	}

	if !ok {
		s.seedDefaults(ctx)
		return
	}

	s.windows = s.windows[:0]
	maxSuffix := 0
	for i := range saved {
		inst := saved[i]
		w := s.newWindow(&inst)
		x, y := ClampPosition(inst.Position.X, inst.Position.Y, w.Width, w.Height, s.vp)
		w.Instance.Position = model.Position{X: x, Y: y}
		s.windows = append(s.windows, w)
		if n := model.WidgetIDSuffix(inst.ID); n > maxSuffix {
			maxSuffix = n
		}
	}
	s.nextID = maxSuffix + 1
}

// seedDefaults installs the first-run widget set at fixed positions.
func (s *Surface) seedDefaults(ctx context.Context) {
	quoteW, quoteH := s.sizeOf("quote")
	weatherW, _ := s.sizeOf("weather")

	defaults := []model.WidgetInstance{
		{ID: model.WidgetID(1), Type: "clock", Position: model.Position{X: 8, Y: 3}},
		{ID: model.WidgetID(2), Type: "weather", Position: model.Position{X: max(0, s.vp.Width-weatherW-8), Y: 3}},
		{ID: model.WidgetID(3), Type: "quote", Position: model.Position{
			X: max(0, (s.vp.Width-quoteW)/2),
			Y: max(0, (s.vp.Height-quoteH)/2),
		}},
	}

	s.windows = s.windows[:0]
	for i := range defaults {
		inst := defaults[i]
		s.windows = append(s.windows, s.newWindow(&inst))
	}
	s.nextID = len(defaults) + 1
	s.persist(ctx)
}

// Create adds a widget of the given type at a random position inside
// the viewport. The reserved "notification" type toggles the panel
// and creates nothing. The created instance is returned so the caller
// can surface a confirmation.
func (s *Surface) Create(ctx context.Context, widgetType string, props map[string]string) *model.WidgetInstance {
	if widgetType == TypeNotification {
		s.panelVisible = !s.panelVisible
		return nil
	}

	x := placePadding
	y := placePadding
	if span := s.vp.Width - placeWidth - 2*placePadding; span > 0 {
		x = s.randInt(span) + placePadding
	}
	if span := s.vp.Height - placeHeight - 2*placePadding; span > 0 {
		y = s.randInt(span) + placePadding
	}

	return s.add(ctx, widgetType, props, x, y)
}

// SpawnCentered adds a widget centered in the viewport with a small
// random jitter, bounded so the widget never lands off-screen. New
// entries are appended at the top of the stack, so the spawned widget
// is raised above all others.
func (s *Surface) SpawnCentered(ctx context.Context, widgetType string, props map[string]string) *model.WidgetInstance {
	w, h := s.sizeOf(widgetType)
	x := (s.vp.Width-w)/2 + s.randInt(2*spawnJitterX+1) - spawnJitterX
	y := (s.vp.Height-h)/2 + s.randInt(2*spawnJitterY+1) - spawnJitterY
	x, y = ClampPosition(x, y, w, h, s.vp)

	return s.add(ctx, widgetType, props, x, y)
}

// add allocates the next ID, appends the window at the top of the
// stack, and persists the full list.
func (s *Surface) add(ctx context.Context, widgetType string, props map[string]string, x, y int) *model.WidgetInstance {
	inst := &model.WidgetInstance{
		ID:       model.WidgetID(s.nextID),
		Type:     widgetType,
		Position: model.Position{X: x, Y: y},
		Props:    props,
	}
	s.nextID++
	s.windows = append(s.windows, s.newWindow(inst))
	s.persist(ctx)
	return inst
}

// Close removes the widget with the given ID and persists the updated
// list. Closing an unknown ID is a silent no-op, not an error.
func (s *Surface) Close(ctx context.Context, id string) {
	for i, w := range s.windows {
		if w.Instance.ID == id {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// BringToFront moves the window to the top of the stack, preserving
// the relative order of everything beneath it.
func (s *Surface) BringToFront(ctx context.Context, id string) {
	for i, w := range s.windows {
		if w.Instance.ID != id {
			continue
		}
		if i == len(s.windows)-1 {
			return // already on top
		}
		s.windows = append(append(s.windows[:i], s.windows[i+1:]...), w)
		s.persist(ctx)
		return
	}
}

// Move commits a new position for the widget and persists, so stored
// state stays live during a drag (commit-on-move).
func (s *Surface) Move(ctx context.Context, id string, x, y int) {
	for _, w := range s.windows {
		if w.Instance.ID == id {
			w.Instance.Position = model.Position{X: x, Y: y}
			s.persist(ctx)
			return
		}
	}
}

// Windows returns the stack in bottom-to-top order.
func (s *Surface) Windows() []*Window {
	return s.windows
}

// Find returns the window with the given ID, or nil.
func (s *Surface) Find(id string) *Window {
	for _, w := range s.windows {
		if w.Instance.ID == id {
			return w
		}
	}
	return nil
}

// Has reports whether an instance with the given ID is on the surface.
// Timer-driven widget bodies use this to drop ticks for closed
// instances.
func (s *Surface) Has(id string) bool {
	return s.Find(id) != nil
}

// TopMostAt returns the top-most window containing the given cell, or
// nil when the point hits the bare surface.
func (s *Surface) TopMostAt(x, y int) *Window {
	for i := len(s.windows) - 1; i >= 0; i-- {
		if s.windows[i].Contains(x, y) {
			return s.windows[i]
		}
	}
	return nil
}

// PanelVisible reports whether the notification panel singleton is
// shown.
func (s *Surface) PanelVisible() bool {
	return s.panelVisible
}

// SetPanelVisible shows or hides the notification panel.
func (s *Surface) SetPanelVisible(v bool) {
	s.panelVisible = v
}

// NextID exposes the ID counter for invariant checks.
func (s *Surface) NextID() int {
	return s.nextID
}

// persist writes the full widget list snapshot. Persistence is
// best-effort: failures are logged and never surfaced to the caller.
func (s *Surface) persist(ctx context.Context) {
	insts := make([]model.WidgetInstance, 0, len(s.windows))
	for _, w := range s.windows {
		insts = append(insts, *w.Instance)
	}
	if err := store.SetJSON(ctx, s.store, store.KeyWidgets, insts); err != nil {
		s.log.Warn("persisting widget list", "error", err)
	}
}

func (s *Surface) newWindow(inst *model.WidgetInstance) *Window {
	w, h := s.sizeOf(inst.Type)
	return &Window{Instance: inst, Width: w, Height: h}
}
