package notify

import (
	"context"

	"github.com/dashy/dashy/internal/model"
)

// WidgetFactory is the surface contract the router needs: spawn a
// widget for a consumed notification action.
type WidgetFactory interface {
	SpawnCentered(ctx context.Context, widgetType string, props map[string]string) *model.WidgetInstance
}

// widgetTypes is the fixed category → widget type table.
var widgetTypes = map[model.NotificationType]string{
	model.NotificationYoutube: "youtube-player",
	model.NotificationBlog:    "blog-reader",
	model.NotificationEvent:   "event-details",
	model.NotificationPotd:    "problem-details",
	model.NotificationPoll:    "poll-form",
	model.NotificationMeeting: "meeting-details",
}

// titleFields maps each category to the payload field carrying its
// human-readable title, with a generic fallback label when the field
// is absent.
var titleFields = map[model.NotificationType]struct {
	field    string
	fallback string
}{
	model.NotificationYoutube: {"videoTitle", "YouTube Video"},
	model.NotificationBlog:    {"blogTitle", "Blog Post"},
	model.NotificationEvent:   {"eventTitle", "Event"},
	model.NotificationPotd:    {"problemTitle", "Problem of the Day"},
	model.NotificationPoll:    {"pollTitle", "Survey"},
	model.NotificationMeeting: {"meetingTitle", "Meeting"},
}

// WidgetTypeFor resolves the widget type spawned for a notification
// category. Unknown categories get the generic notification widget.
func WidgetTypeFor(typ model.NotificationType) string {
	if t, ok := widgetTypes[typ]; ok {
		return t
	}
	return "notification"
}

// TitleFor resolves a human-readable widget title from the payload,
// falling back to a generic per-category label.
func TitleFor(typ model.NotificationType, data model.ActionData) string {
	entry, ok := titleFields[typ]
	if !ok {
		return "Notification"
	}
	if data != nil {
		if title := data[entry.field]; title != "" {
			return title
		}
	}
	return entry.fallback
}

// Router bridges the center's pending-action slot to the surface's
// widget factory. It only reads and clears the slot; it never touches
// the record list.
type Router struct {
	center  *Center
	factory WidgetFactory
}

// NewRouter creates a router over the given center and factory.
func NewRouter(center *Center, factory WidgetFactory) *Router {
	return &Router{center: center, factory: factory}
}

// Dispatch consumes the pending action, if any, and spawns the
// matching content widget. Strictly one-shot: the slot is cleared
// before the factory runs, so a dispatch can never be replayed.
func (r *Router) Dispatch(ctx context.Context) *model.WidgetInstance {
	action, ok := r.center.TakePendingAction()
	if !ok {
		return nil
	}

	props := make(map[string]string, len(action.Data)+1)
	for k, v := range action.Data {
		props[k] = v
	}
	props["title"] = TitleFor(action.Type, action.Data)

	return r.factory.SpawnCentered(ctx, WidgetTypeFor(action.Type), props)
}
