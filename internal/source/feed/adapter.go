// Package feed implements a notification source that polls a JSON
// HTTP endpoint for {title, message, type, actionData} records.
package feed

import (
	"context"
	"fmt"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/notify"
	"github.com/dashy/dashy/internal/source"
)

// feedItem is the wire shape of one feed entry. The optional id lets
// the adapter skip records it has already delivered.
type feedItem struct {
	ID         string                 `json:"id,omitempty"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Type       model.NotificationType `json:"type,omitempty"`
	ActionData model.ActionData       `json:"actionData,omitempty"`
}

// Adapter implements source.Source for JSON notification feeds.
type Adapter struct {
	client *Client
	name   string
	path   string

	// delivered tracks feed entry IDs already handed to the center so
	// a feed that returns a rolling window is not redelivered.
	delivered map[string]bool
}

// NewAdapter creates a feed source polling baseURL+path. An empty path
// defaults to /notifications.
func NewAdapter(name, baseURL, path, token string) *Adapter {
	if path == "" {
		path = "/notifications"
	}
	return &Adapter{
		client:    NewClient(baseURL, token),
		name:      name,
		path:      path,
		delivered: make(map[string]bool),
	}
}

// Type returns the source type identifier.
func (a *Adapter) Type() source.SourceType {
	return source.SourceTypeFeed
}

// Name returns the configured label for this feed.
func (a *Adapter) Name() string {
	return a.name
}

// Fetch retrieves the feed and returns entries not yet delivered.
// Entries without a title are dropped; entries without a type default
// to the standard category.
func (a *Adapter) Fetch(ctx context.Context) ([]notify.Incoming, error) {
	var items []feedItem
	if err := a.client.Get(ctx, a.path, &items); err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", a.name, err)
	}

	var out []notify.Incoming
	for _, item := range items {
		if item.Title == "" {
			continue
		}
		if item.ID != "" {
			if a.delivered[item.ID] {
				continue
			}
			a.delivered[item.ID] = true
		}
		typ := item.Type
		if typ == "" {
			typ = model.NotificationStandard
		}
		out = append(out, notify.Incoming{
			Title:      item.Title,
			Message:    item.Message,
			Type:       typ,
			ActionData: item.ActionData,
		})
	}
	return out, nil
}
