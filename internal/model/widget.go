package model

import (
	"fmt"
	"strconv"
	"strings"
)

// WidgetIDPrefix is the prefix shared by all widget instance IDs.
const WidgetIDPrefix = "widget-"

// Position is a widget's top-left corner in surface cells.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WidgetInstance is one floating widget on the dashboard surface.
type WidgetInstance struct {
	// ID is the unique instance identifier, of the form "widget-<n>".
	// IDs are assigned monotonically and never reused within a session.
	ID string `json:"id"`

	// Type selects the render registry entry for this instance
	// (e.g., "clock", "notes", "event-details").
	Type string `json:"type"`

	// Position is the top-left corner, mutated by dragging and persisted.
	Position Position `json:"position"`

	// Props is an optional opaque payload handed to the body renderer,
	// e.g., the action data of the notification that spawned this
	// widget. Immutable after creation.
	Props map[string]string `json:"props,omitempty"`
}

// WidgetID formats a widget instance ID from its numeric suffix.
func WidgetID(n int) string {
	return fmt.Sprintf("%s%d", WidgetIDPrefix, n)
}

// WidgetIDSuffix parses the numeric suffix of a widget instance ID.
// It returns 0 for IDs that do not follow the "widget-<n>" form, so
// malformed persisted IDs never poison the ID counter.
func WidgetIDSuffix(id string) int {
	rest, ok := strings.CutPrefix(id, WidgetIDPrefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
