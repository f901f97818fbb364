// Package app wires the dashboard together: the surface, the
// notification center, the pollers, and the Bubble Tea event loop that
// routes keys, mouse input, and background results between them.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dashy/dashy/internal/desktop"
	"github.com/dashy/dashy/internal/keys"
	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/notify"
	"github.com/dashy/dashy/internal/store"
	appsync "github.com/dashy/dashy/internal/sync"
	"github.com/dashy/dashy/internal/theme"
	"github.com/dashy/dashy/internal/ui"
	"github.com/dashy/dashy/internal/ui/dock"
	helpview "github.com/dashy/dashy/internal/ui/help"
	"github.com/dashy/dashy/internal/ui/panel"
	"github.com/dashy/dashy/internal/ui/settings"
	"github.com/dashy/dashy/internal/ui/widgets"
)

// statusTTL is how long a transient status line stays visible.
const statusTTL = 4 * time.Second

// panelWidth is the notification panel's footprint.
const panelWidth = 44

// statusExpireMsg clears a transient status line. The sequence number
// keeps an old expiry from wiping a newer message.
type statusExpireMsg struct {
	seq int
}

// overlayState tracks which modal overlay, if any, owns input.
type overlayState int

const (
	overlayNone overlayState = iota
	overlayHelp
	overlaySettings
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg   *model.AppConfig
	log   *slog.Logger
	store store.Store
	keys  *keys.KeyMap

	registry *ui.Registry
	surface  *desktop.Surface
	center   *notify.Center
	router   *notify.Router
	poller   *appsync.Poller

	// bodies holds the live body model for every window, keyed by
	// widget instance ID. Closing a window removes its entry, which is
	// what stops that instance's tick messages.
	bodies map[string]widgets.Body

	dockBar      dock.Model
	panelView    panel.Model
	helpView     helpview.Model
	settingsView settings.Model
	overlay      overlayState

	wallpaper theme.Wallpaper
	themeSet  model.ThemeSettings

	dragID    string
	status    string
	statusSeq int
	width     int
	height    int
	ready     bool
}

// New creates the root model over an opened store and loaded
// configuration.
func New(cfg *model.AppConfig, s store.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	km := keys.DefaultKeyMap()
	deps := widgets.Deps{Store: s, Cfg: cfg, Log: logger}
	registry := ui.NewRegistry(deps)
	surface := desktop.NewSurface(s, logger, registry.SizeOf)
	center := notify.NewCenter(s, logger, notify.NewTerminalAlerter())

	return Model{
		cfg:          cfg,
		log:          logger,
		store:        s,
		keys:         km,
		registry:     registry,
		surface:      surface,
		center:       center,
		router:       notify.NewRouter(center, surface),
		poller:       appsync.New(),
		bodies:       make(map[string]widgets.Body),
		dockBar:      dock.New(80),
		panelView:    panel.New(center, panelWidth, 20),
		helpView:     helpview.New(km, 80, 24),
		settingsView: settings.New(80, 24),
		wallpaper:    theme.WallpaperByName(""),
		themeSet:     model.DefaultThemeSettings(),
	}
}

// Init registers the configured notification sources.
func (m Model) Init() tea.Cmd {
	return m.registerSources()
}

// Update handles messages and routes them to the surface, the panel,
// the overlays, and the widget bodies.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(ctx, msg)

	case sourcesRegisteredMsg:
		if msg.count == 0 {
			return m, nil
		}
		return m, tea.Batch(
			m.setStatus(fmt.Sprintf("polling %d notification source(s)", msg.count)),
			m.poller.Start(),
		)

	case appsync.PollResultMsg:
		if msg.AuthError != nil {
			return m, tea.Batch(
				m.setStatus(msg.AuthError.Message),
				m.poller.WaitForNextResult(),
			)
		}
		for _, rec := range msg.Records {
			m.center.ReceiveExternal(ctx, rec)
		}
		m.dockBar.SetUnread(m.center.UnreadCount())
		return m, m.poller.WaitForNextResult()

	case panel.OpenMsg:
		return m.openNotification(ctx, msg.Record)

	case panel.ClearMsg:
		m.center.Clear(ctx, msg.ID)
		m.dockBar.SetUnread(m.center.UnreadCount())
		return m, nil

	case panel.ClearAllMsg:
		m.center.ClearAll(ctx)
		m.dockBar.SetUnread(0)
		return m, nil

	case settings.SavedMsg:
		m.overlay = overlayNone
		m.themeSet = msg.Settings
		theme.Apply(m.themeSet)
		if err := store.SetJSON(ctx, m.store, store.KeyTheme, m.themeSet); err != nil {
			m.log.Warn("persisting theme settings", "error", err)
		}
		return m, m.setStatus("appearance saved")

	case settings.CancelMsg:
		m.overlay = overlayNone
		return m, nil

	case statusExpireMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(ctx, msg)

	case tea.MouseMsg:
		return m.handleMouse(ctx, msg)
	}

	// Everything else is widget traffic: ticks, loads, and fetch
	// results addressed by instance ID.
	return m, m.updateBodies(msg)
}

// handleResize installs the new viewport and, on the first resize,
// rehydrates all persisted state.
func (m Model) handleResize(ctx context.Context, msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.surface.SetViewport(desktop.Viewport{
		Width:   msg.Width,
		Height:  msg.Height,
		DockTop: msg.Height - 1,
	})

	m.dockBar.SetWidth(msg.Width)
	m.panelView.SetSize(panelWidth, msg.Height-3)
	m.helpView.SetSize(msg.Width, msg.Height)
	m.settingsView.SetSize(msg.Width, msg.Height)

	var cmds []tea.Cmd
	if !m.ready {
		m.ready = true
		cmds = append(cmds, m.rehydrate(ctx)...)
	}

	// Forward to the settings form so huh can lay itself out.
	if m.overlay == overlaySettings {
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// rehydrate loads every persisted slice of state and builds the body
// models for the restored windows.
func (m *Model) rehydrate(ctx context.Context) []tea.Cmd {
	ok, err := store.GetJSON(ctx, m.store, store.KeyTheme, &m.themeSet)
	if err != nil {
		m.log.Warn("discarding malformed theme settings", "error", err)
	}
	if !ok || err != nil {
		m.themeSet = model.DefaultThemeSettings()
	}
	theme.Apply(m.themeSet)

	if name, err := m.store.Get(ctx, store.KeyWallpaper); err == nil && name != "" {
		m.wallpaper = theme.WallpaperByName(name)
	}

	m.surface.Rehydrate(ctx)
	m.center.Rehydrate(ctx)
	m.dockBar.SetUnread(m.center.UnreadCount())

	var cmds []tea.Cmd
	for _, w := range m.surface.Windows() {
		body := m.registry.NewBody(w.Instance)
		m.bodies[w.Instance.ID] = body
		cmds = append(cmds, body.Init())
	}
	return cmds
}

// handleKey routes key input: overlays first, then the panel, then the
// editing body, then the global bindings, and finally the focused
// window's body.
func (m Model) handleKey(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, even mid-edit.
	if msg.String() == "ctrl+c" {
		m.poller.Stop()
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
			m.overlay = overlayNone
		}
		return m, nil
	case overlaySettings:
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd
	}

	if m.surface.PanelVisible() {
		if key.Matches(msg, m.keys.Back) {
			m.surface.SetPanelVisible(false)
			return m, nil
		}
		if key.Matches(msg, m.keys.Notifications) {
			m.surface.SetPanelVisible(false)
			return m, nil
		}
		var cmd tea.Cmd
		m.panelView, cmd = m.panelView.Update(msg)
		return m, cmd
	}

	// A body in text-entry mode owns the keyboard.
	if body, ok := m.focusedBody(); ok {
		if ed, isEditor := body.(widgets.Editor); isEditor && ed.Editing() {
			return m, m.updateFocusedBody(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.poller.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil

	case key.Matches(msg, m.keys.AddClock):
		return m.createWidget(ctx, "clock")
	case key.Matches(msg, m.keys.AddNotes):
		return m.createWidget(ctx, "notes")
	case key.Matches(msg, m.keys.AddWeather):
		return m.createWidget(ctx, "weather")
	case key.Matches(msg, m.keys.AddCalculator):
		return m.createWidget(ctx, "calculator")
	case key.Matches(msg, m.keys.AddTodo):
		return m.createWidget(ctx, "todo")
	case key.Matches(msg, m.keys.AddSearch):
		return m.createWidget(ctx, "search")
	case key.Matches(msg, m.keys.AddQuote):
		return m.createWidget(ctx, "quote")

	case key.Matches(msg, m.keys.Notifications):
		m.surface.Create(ctx, desktop.TypeNotification, nil)
		return m, nil

	case key.Matches(msg, m.keys.Wallpaper):
		return m.cycleWallpaper(ctx)

	case key.Matches(msg, m.keys.Settings):
		m.overlay = overlaySettings
		return m, m.settingsView.Start(m.themeSet)

	case key.Matches(msg, m.keys.Refresh):
		m.poller.RefreshAll()
		return m, m.setStatus("refreshing sources")

	case key.Matches(msg, m.keys.EnableAlerts):
		perm := m.center.EnableAlerts(m.cfg.Display.AlertsEnabled)
		return m, m.setStatus("terminal alerts: " + perm.String())

	case key.Matches(msg, m.keys.Back):
		return m, nil
	}

	return m, m.updateFocusedBody(msg)
}

// handleMouse routes pointer input: the dock row, the panel, then the
// window stack.
func (m Model) handleMouse(ctx context.Context, msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay != overlayNone {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(ctx, msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.dragID == "" {
			return m, nil
		}
		w := m.surface.Find(m.dragID)
		if w == nil {
			m.dragID = ""
			return m, nil
		}
		if x, y, moved := w.DragTo(msg.X, msg.Y, m.surface.Viewport()); moved {
			m.surface.Move(ctx, m.dragID, x, y)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.dragID != "" {
			if w := m.surface.Find(m.dragID); w != nil {
				w.EndDrag()
			}
			m.dragID = ""
		}
		return m, nil
	}
	return m, nil
}

// handlePress resolves a left press against the dock, the panel, and
// the window stack, top-most first.
func (m Model) handlePress(ctx context.Context, x, y int) (tea.Model, tea.Cmd) {
	// Dock row.
	if y == m.height-1 {
		if item, ok := m.dockBar.ItemAt(x); ok {
			if item.Type == "notification" {
				m.surface.Create(ctx, desktop.TypeNotification, nil)
				return m, nil
			}
			return m.createWidget(ctx, item.Type)
		}
		return m, nil
	}

	// Panel, when open, sits above the window stack.
	if m.surface.PanelVisible() {
		px, py := m.panelPosition()
		if x >= px && x < px+panelWidth && y >= py {
			if rec, ok := m.panelView.RecordAt(y - py); ok {
				return m.openNotification(ctx, rec)
			}
			return m, nil
		}
		// A press outside the panel dismisses it.
		m.surface.SetPanelVisible(false)
		return m, nil
	}

	w := m.surface.TopMostAt(x, y)
	if w == nil {
		return m, nil
	}

	spec := m.registry.Spec(w.Instance.Type)
	if !spec.HideControls && w.InCloseControl(x, y) {
		id := w.Instance.ID
		m.surface.Close(ctx, id)
		delete(m.bodies, id)
		return m, nil
	}

	m.surface.BringToFront(ctx, w.Instance.ID)
	if w.InHeader(x, y) {
		w.StartDrag(x, y)
		m.dragID = w.Instance.ID
	}
	return m, nil
}

// openNotification marks the record read, stages its action, and
// routes it to a content widget when it carries a payload.
func (m Model) openNotification(ctx context.Context, rec model.NotificationRecord) (tea.Model, tea.Cmd) {
	m.center.MarkRead(ctx, rec.ID)
	m.dockBar.SetUnread(m.center.UnreadCount())

	if rec.ActionData == nil {
		return m, nil
	}

	m.center.SetPendingAction(rec.Type, rec.ActionData)
	inst := m.router.Dispatch(ctx)
	if inst == nil {
		return m, nil
	}

	m.surface.SetPanelVisible(false)
	body := m.registry.NewBody(inst)
	m.bodies[inst.ID] = body
	return m, tea.Batch(
		body.Init(),
		m.setStatus("opened "+m.registry.Title(inst)),
	)
}

// createWidget adds a widget of the given type and starts its body.
func (m Model) createWidget(ctx context.Context, widgetType string) (tea.Model, tea.Cmd) {
	inst := m.surface.Create(ctx, widgetType, nil)
	if inst == nil {
		return m, nil
	}
	body := m.registry.NewBody(inst)
	m.bodies[inst.ID] = body
	return m, tea.Batch(
		body.Init(),
		m.setStatus(fmt.Sprintf("added %s widget", m.registry.Spec(widgetType).Title)),
	)
}

// cycleWallpaper advances to the next gallery entry and persists the
// selection.
func (m Model) cycleWallpaper(ctx context.Context) (tea.Model, tea.Cmd) {
	names := theme.DefaultWallpaperNames()
	next := names[0]
	for i, name := range names {
		if name == m.wallpaper.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	m.wallpaper = theme.WallpaperByName(next)
	if err := m.store.Set(ctx, store.KeyWallpaper, next); err != nil {
		m.log.Warn("persisting wallpaper", "error", err)
	}
	return m, m.setStatus("wallpaper: " + next)
}

// focusedBody returns the body of the top-most window.
func (m Model) focusedBody() (widgets.Body, bool) {
	windows := m.surface.Windows()
	if len(windows) == 0 {
		return nil, false
	}
	body, ok := m.bodies[windows[len(windows)-1].Instance.ID]
	return body, ok
}

// updateFocusedBody forwards a message to the top-most window's body
// only.
func (m *Model) updateFocusedBody(msg tea.Msg) tea.Cmd {
	windows := m.surface.Windows()
	if len(windows) == 0 {
		return nil
	}
	id := windows[len(windows)-1].Instance.ID
	body, ok := m.bodies[id]
	if !ok {
		return nil
	}
	updated, cmd := body.Update(msg)
	m.bodies[id] = updated
	return cmd
}

// updateBodies forwards a message to every live body. Bodies match on
// their own instance ID, so a tick for a closed window reaches nobody
// and dies.
func (m *Model) updateBodies(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for id, body := range m.bodies {
		updated, cmd := body.Update(msg)
		m.bodies[id] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// setStatus installs a transient status line.
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpireMsg{seq: seq}
	})
}

// panelPosition returns the panel's top-left corner: pinned to the
// right edge, below the top row.
func (m Model) panelPosition() (int, int) {
	x := m.width - panelWidth - 1
	if x < 0 {
		x = 0
	}
	return x, 1
}

// View composites the full frame: wallpaper, window stack in order,
// status line, dock, and any overlay.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	frame := ui.WallpaperFill(m.width, m.height, m.wallpaper)

	windows := m.surface.Windows()
	for i, w := range windows {
		body, ok := m.bodies[w.Instance.ID]
		if !ok {
			continue
		}
		focused := i == len(windows)-1
		rendered := ui.RenderWindow(
			m.registry.Title(w.Instance),
			body.View(),
			m.registry.Spec(w.Instance.Type),
			focused,
		)
		frame = ui.Overlay(w.Instance.Position.X, w.Instance.Position.Y, rendered, frame)
	}

	if m.status != "" {
		frame = ui.Overlay(1, m.height-2, theme.StatusBarStyle.Render(m.status), frame)
	}

	frame = ui.Overlay(0, m.height-1, m.dockBar.View(), frame)

	if m.surface.PanelVisible() {
		px, py := m.panelPosition()
		frame = ui.Overlay(px, py, m.panelView.View(), frame)
	}

	switch m.overlay {
	case overlayHelp:
		frame = ui.OverlayCentered(m.width, m.height, m.helpView.View(), frame)
	case overlaySettings:
		frame = ui.OverlayCentered(m.width, m.height, m.settingsView.View(), frame)
	}
	return frame
}
