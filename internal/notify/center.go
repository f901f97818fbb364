// Package notify owns the notification center: the record list, the
// unread state, the single-slot pending action, and terminal alerts.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/store"
)

// Permission is the session-cached outcome of enabling terminal
// alerts.
type Permission int

const (
	// PermissionDefault means alerts have not been requested yet.
	PermissionDefault Permission = iota
	// PermissionGranted means alerts are on and the terminal supports
	// them.
	PermissionGranted
	// PermissionDenied means alerts are switched off in configuration.
	PermissionDenied
	// PermissionUnsupported means the output is not an interactive
	// terminal, so alerts cannot be delivered at all.
	PermissionUnsupported
)

// String returns the user-visible label for the permission state.
func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "enabled"
	case PermissionDenied:
		return "disabled"
	case PermissionUnsupported:
		return "unsupported"
	default:
		return "not requested"
	}
}

// Incoming is an externally delivered notification before the center
// assigns it an identity and timestamp.
type Incoming struct {
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Type       model.NotificationType `json:"type"`
	ActionData model.ActionData       `json:"actionData,omitempty"`
}

// Center owns the notification records and the pending-action slot.
// The record list is the only stored truth: the unread count is always
// derived from it, never tracked separately.
type Center struct {
	store   store.Store
	log     *slog.Logger
	alerter Alerter

	records    []model.NotificationRecord
	pending    model.PendingAction
	permission Permission

	now   func() time.Time
	newID func() string
}

// NewCenter creates a notification center backed by the given store.
// A nil alerter disables terminal alerts entirely.
func NewCenter(s store.Store, logger *slog.Logger, alerter Alerter) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{
		store:   s,
		log:     logger,
		alerter: alerter,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Rehydrate loads the persisted record list. Malformed data is
// discarded and treated as empty.
func (c *Center) Rehydrate(ctx context.Context) {
	var saved []model.NotificationRecord
	ok, err := store.GetJSON(ctx, c.store, store.KeyNotifications, &saved)
	if err != nil {
		c.log.Warn("discarding malformed notification state", "error", err)
		return
	}
	if ok {
		c.records = saved
	}
}

// Add creates and prepends a new unread record, persists the full
// list, and raises a terminal alert when permission is granted.
func (c *Center) Add(ctx context.Context, title, message string, typ model.NotificationType, data model.ActionData) model.NotificationRecord {
	return c.insert(ctx, Incoming{Title: title, Message: message, Type: typ, ActionData: data})
}

// ReceiveExternal ingests a record delivered by a notification source.
func (c *Center) ReceiveExternal(ctx context.Context, in Incoming) model.NotificationRecord {
	if in.Type == "" {
		in.Type = model.NotificationStandard
	}
	return c.insert(ctx, in)
}

func (c *Center) insert(ctx context.Context, in Incoming) model.NotificationRecord {
	rec := model.NotificationRecord{
		ID:         c.newID(),
		Title:      in.Title,
		Message:    in.Message,
		Timestamp:  c.now(),
		Read:       false,
		Type:       in.Type,
		ActionData: in.ActionData,
	}
	c.records = append([]model.NotificationRecord{rec}, c.records...)
	c.persist(ctx)

	if c.permission == PermissionGranted && c.alerter != nil {
		if err := c.alerter.Alert(rec.Title, rec.Message); err != nil {
			c.log.Warn("raising terminal alert", "error", err)
		}
	}
	return rec
}

// MarkRead flips a record to read. It is idempotent: marking an
// already-read or unknown record changes nothing and does not persist.
func (c *Center) MarkRead(ctx context.Context, id string) bool {
	for i := range c.records {
		if c.records[i].ID == id {
			if c.records[i].Read {
				return false
			}
			c.records[i].Read = true
			c.persist(ctx)
			return true
		}
	}
	return false
}

// Clear removes a single record and persists the result.
func (c *Center) Clear(ctx context.Context, id string) {
	for i := range c.records {
		if c.records[i].ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			c.persist(ctx)
			return
		}
	}
}

// ClearAll removes every record and persists the empty list.
func (c *Center) ClearAll(ctx context.Context) {
	c.records = nil
	c.persist(ctx)
}

// Records returns the list, newest first.
func (c *Center) Records() []model.NotificationRecord {
	return c.records
}

// UnreadCount is recomputed from the list on every call.
func (c *Center) UnreadCount() int {
	n := 0
	for i := range c.records {
		if !c.records[i].Read {
			n++
		}
	}
	return n
}

// SetPendingAction overwrites the single pending-action slot. A nil
// data clears the slot.
func (c *Center) SetPendingAction(typ model.NotificationType, data model.ActionData) {
	if data == nil {
		c.pending = model.PendingAction{}
		return
	}
	c.pending = model.PendingAction{Type: typ, Data: data}
}

// TakePendingAction consumes the slot exactly once: the slot is
// cleared before the action is returned, so the same action can never
// be replayed.
func (c *Center) TakePendingAction() (model.PendingAction, bool) {
	if c.pending.IsZero() {
		return model.PendingAction{}, false
	}
	p := c.pending
	c.pending = model.PendingAction{}
	return p, true
}

// EnableAlerts requests alert delivery once per session. The outcome
// is cached and reported back for a user-visible confirmation; it is
// never retried automatically.
func (c *Center) EnableAlerts(configEnabled bool) Permission {
	if c.permission != PermissionDefault {
		return c.permission
	}
	switch {
	case c.alerter == nil || !c.alerter.Supported():
		c.permission = PermissionUnsupported
	case !configEnabled:
		c.permission = PermissionDenied
	default:
		c.permission = PermissionGranted
	}
	return c.permission
}

// Permission returns the cached alert permission state.
func (c *Center) Permission() Permission {
	return c.permission
}

// persist writes the full list snapshot, best-effort.
func (c *Center) persist(ctx context.Context) {
	if err := store.SetJSON(ctx, c.store, store.KeyNotifications, c.records); err != nil {
		c.log.Warn("persisting notifications", "error", err)
	}
}
