package store

import "context"

// Persisted state keys. Every value is a JSON-encoded string except
// where noted; callers own the shape and must guard against malformed
// data (Rehydrate falls back to defaults, never errors out).
const (
	KeyWidgets       = "widgets"        // []model.WidgetInstance, bottom→top stack order
	KeyWallpaper     = "wallpaper"      // current wallpaper name (plain string)
	KeyWallpapers    = "wallpapers"     // []string gallery
	KeyNotes         = "notes"          // plain string
	KeyTodos         = "todos"          // []model.TodoItem
	KeyNotifications = "notifications"  // []model.NotificationRecord
	KeyTheme         = "theme"          // model.ThemeSettings
	KeySearchHistory = "search-history" // []string, cap 5, most-recent-first
)

// Store is the opaque key→string persistence contract used by every
// stateful component. It performs no validation; callers serialize
// whole-value snapshots and must treat malformed stored data as
// absent.
type Store interface {
	// Get returns the value for key, or "" with a nil error when the
	// key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
