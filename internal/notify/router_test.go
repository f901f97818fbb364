package notify

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/tests/testutil"
)

// stubFactory records spawn requests.
type stubFactory struct {
	spawned []struct {
		widgetType string
		props      map[string]string
	}
}

func (f *stubFactory) SpawnCentered(ctx context.Context, widgetType string, props map[string]string) *model.WidgetInstance {
	f.spawned = append(f.spawned, struct {
		widgetType string
		props      map[string]string
	}{widgetType, props})
	return &model.WidgetInstance{ID: "widget-1", Type: widgetType, Props: props}
}

func TestWidgetTypeFor(t *testing.T) {
	tests := []struct {
		typ  model.NotificationType
		want string
	}{
		{model.NotificationYoutube, "youtube-player"},
		{model.NotificationBlog, "blog-reader"},
		{model.NotificationEvent, "event-details"},
		{model.NotificationPotd, "problem-details"},
		{model.NotificationPoll, "poll-form"},
		{model.NotificationMeeting, "meeting-details"},
		{model.NotificationStandard, "notification"},
		{model.NotificationType("mystery"), "notification"},
	}
	for _, tt := range tests {
		if got := WidgetTypeFor(tt.typ); got != tt.want {
			t.Errorf("WidgetTypeFor(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestTitleFor(t *testing.T) {
	tests := []struct {
		name string
		typ  model.NotificationType
		data model.ActionData
		want string
	}{
		{"payload title wins", model.NotificationYoutube, model.ActionData{"videoTitle": "Go Talk"}, "Go Talk"},
		{"fallback youtube", model.NotificationYoutube, nil, "YouTube Video"},
		{"fallback blog", model.NotificationBlog, model.ActionData{}, "Blog Post"},
		{"fallback event", model.NotificationEvent, nil, "Event"},
		{"fallback potd", model.NotificationPotd, nil, "Problem of the Day"},
		{"fallback poll", model.NotificationPoll, nil, "Survey"},
		{"fallback meeting", model.NotificationMeeting, nil, "Meeting"},
		{"unknown category", model.NotificationType("mystery"), model.ActionData{"x": "y"}, "Notification"},
		{"empty field ignored", model.NotificationPoll, model.ActionData{"pollTitle": ""}, "Survey"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFor(tt.typ, tt.data); got != tt.want {
				t.Errorf("TitleFor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDispatchSpawnsFromPendingAction(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), slog.Default(), nil)
	factory := &stubFactory{}
	r := NewRouter(c, factory)
	ctx := context.Background()

	c.SetPendingAction(model.NotificationYoutube, model.ActionData{
		"videoId":    "abc123",
		"videoTitle": "Concurrency Patterns",
	})

	inst := r.Dispatch(ctx)
	if inst == nil {
		t.Fatal("Dispatch returned nil with a pending action")
	}
	if len(factory.spawned) != 1 {
		t.Fatalf("factory spawned %d times", len(factory.spawned))
	}
	got := factory.spawned[0]
	if got.widgetType != "youtube-player" {
		t.Errorf("spawned %q, want youtube-player", got.widgetType)
	}
	if got.props["videoId"] != "abc123" {
		t.Errorf("action data not copied into props: %+v", got.props)
	}
	if got.props["title"] != "Concurrency Patterns" {
		t.Errorf("title prop = %q", got.props["title"])
	}
}

func TestDispatchWithoutPendingActionIsNoOp(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), slog.Default(), nil)
	factory := &stubFactory{}
	r := NewRouter(c, factory)

	if inst := r.Dispatch(context.Background()); inst != nil {
		t.Errorf("Dispatch with empty slot returned %+v", inst)
	}
	if len(factory.spawned) != 0 {
		t.Error("factory invoked with empty slot")
	}
}

func TestDispatchConsumesActionExactlyOnce(t *testing.T) {
	c := NewCenter(testutil.NewTestStore(t), slog.Default(), nil)
	factory := &stubFactory{}
	r := NewRouter(c, factory)
	ctx := context.Background()

	c.SetPendingAction(model.NotificationPoll, model.ActionData{"pollTitle": "Lunch?"})

	if r.Dispatch(ctx) == nil {
		t.Fatal("first dispatch failed")
	}
	if r.Dispatch(ctx) != nil {
		t.Error("second dispatch replayed the action")
	}
	if len(factory.spawned) != 1 {
		t.Errorf("factory spawned %d times, want 1", len(factory.spawned))
	}
}
