// Package ui renders the dashboard: it resolves widget types to
// footprints and bodies, draws window chrome, and composites the
// window stack over the wallpaper.
package ui

import (
	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/ui/widgets"
)

// Spec describes how one widget type renders: its window title, its
// outer footprint in cells, and whether the window chrome hides the
// close control. Ambient widgets like the clock have no close control
// and stay on the surface as permanent fixtures.
type Spec struct {
	Title        string
	Width        int
	Height       int
	HideControls bool
}

// specs is the fixed widget type table. Unknown types fall back to a
// generic placeholder so stored state from a newer version still
// renders.
var specs = map[string]Spec{
	"clock":           {Title: "Clock", Width: 28, Height: 5, HideControls: true},
	"weather":         {Title: "Weather", Width: 30, Height: 7, HideControls: true},
	"quote":           {Title: "Quote", Width: 32, Height: 8, HideControls: true},
	"notes":           {Title: "Notes", Width: 30, Height: 12},
	"calculator":      {Title: "Calculator", Width: 26, Height: 10},
	"todo":            {Title: "To-Do", Width: 30, Height: 14},
	"search":          {Title: "Search", Width: 30, Height: 9},
	"event-details":   {Title: "Event", Width: 34, Height: 10},
	"youtube-player":  {Title: "YouTube Video", Width: 36, Height: 12},
	"blog-reader":     {Title: "Blog Post", Width: 36, Height: 12},
	"problem-details": {Title: "Problem of the Day", Width: 36, Height: 12},
	"poll-form":       {Title: "Survey", Width: 34, Height: 14},
	"meeting-details": {Title: "Meeting", Width: 34, Height: 10},
	"notification":    {Title: "Notification", Width: 34, Height: 9},
}

// defaultSpec is used for widget types this build does not know.
var defaultSpec = Spec{Title: "Widget", Width: 30, Height: 8}

// Registry resolves widget types to render specs and constructs their
// body models.
type Registry struct {
	deps widgets.Deps
}

// NewRegistry creates a registry over the shared body dependencies.
func NewRegistry(deps widgets.Deps) *Registry {
	return &Registry{deps: deps}
}

// Spec returns the render spec for a widget type.
func (r *Registry) Spec(widgetType string) Spec {
	if s, ok := specs[widgetType]; ok {
		return s
	}
	return defaultSpec
}

// SizeOf reports the outer footprint for a widget type. It satisfies
// the surface's size resolver.
func (r *Registry) SizeOf(widgetType string) (int, int) {
	s := r.Spec(widgetType)
	return s.Width, s.Height
}

// Title returns the window title for an instance: the payload title
// when the spawn carried one, the type's title otherwise.
func (r *Registry) Title(inst *model.WidgetInstance) string {
	if inst.Props != nil {
		if t := inst.Props["title"]; t != "" {
			return t
		}
	}
	return r.Spec(inst.Type).Title
}

// NewBody constructs the body model for a widget instance. The body is
// sized to the window's inner area: the footprint minus the side
// borders, the header row, and the bottom border.
func (r *Registry) NewBody(inst *model.WidgetInstance) widgets.Body {
	spec := r.Spec(inst.Type)
	innerW := spec.Width - 2
	bodyH := spec.Height - 2

	switch inst.Type {
	case "clock":
		return widgets.NewClock(inst.ID, innerW)
	case "weather":
		return widgets.NewWeather(inst.ID, innerW, r.deps.Cfg.Weather)
	case "quote":
		return widgets.NewQuote(inst.ID, innerW, bodyH, r.deps.Cfg.Display.QuoteRotationSec)
	case "notes":
		return widgets.NewNotes(inst.ID, innerW, bodyH, r.deps)
	case "calculator":
		return widgets.NewCalculator(inst.ID, innerW)
	case "todo":
		return widgets.NewTodo(inst.ID, innerW, bodyH, r.deps)
	case "search":
		return widgets.NewSearch(inst.ID, innerW, r.deps)
	case "poll-form":
		return widgets.NewPollForm(inst.ID, innerW, inst.Props)
	default:
		return widgets.NewContent(inst.ID, inst.Type, innerW, inst.Props)
	}
}
