package ui

import (
	"log/slog"
	"testing"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/ui/widgets"
	"github.com/dashy/dashy/tests/testutil"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(widgets.Deps{
		Store: testutil.NewTestStore(t),
		Cfg:   &model.AppConfig{Display: model.DisplayConfig{QuoteRotationSec: 30}},
		Log:   slog.Default(),
	})
}

func TestSizeOf(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		widgetType string
		wantW      int
		wantH      int
	}{
		{"clock", 28, 5},
		{"todo", 30, 14},
		{"youtube-player", 36, 12},
		{"never-heard-of-it", 30, 8},
	}
	for _, tt := range tests {
		w, h := r.SizeOf(tt.widgetType)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("SizeOf(%q) = %dx%d, want %dx%d", tt.widgetType, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestSpecUnknownTypeFallsBack(t *testing.T) {
	r := newTestRegistry(t)

	s := r.Spec("from-a-newer-version")
	if s.Title != "Widget" {
		t.Errorf("fallback title = %q", s.Title)
	}
	if s.HideControls {
		t.Error("fallback spec must keep the close control")
	}
}

func TestTitle(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name string
		inst *model.WidgetInstance
		want string
	}{
		{"type title", &model.WidgetInstance{Type: "notes"}, "Notes"},
		{"props override", &model.WidgetInstance{Type: "youtube-player", Props: map[string]string{"title": "Go Talk"}}, "Go Talk"},
		{"empty prop ignored", &model.WidgetInstance{Type: "poll-form", Props: map[string]string{"title": ""}}, "Survey"},
		{"unknown type", &model.WidgetInstance{Type: "mystery"}, "Widget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Title(tt.inst); got != tt.want {
				t.Errorf("Title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewBodyCoversEveryRegisteredType(t *testing.T) {
	r := newTestRegistry(t)

	for widgetType := range specs {
		body := r.NewBody(&model.WidgetInstance{ID: "widget-1", Type: widgetType})
		if body == nil {
			t.Errorf("NewBody(%q) = nil", widgetType)
			continue
		}
		if body.View() == "" {
			t.Errorf("NewBody(%q) renders empty", widgetType)
		}
	}
}

func TestNewBodyUnknownTypeGetsPlaceholder(t *testing.T) {
	r := newTestRegistry(t)

	body := r.NewBody(&model.WidgetInstance{ID: "widget-1", Type: "mystery", Props: map[string]string{"message": "hi"}})
	if body == nil {
		t.Fatal("NewBody returned nil for unknown type")
	}
	if _, ok := body.(*widgets.Content); !ok {
		t.Errorf("unknown type got %T, want *widgets.Content", body)
	}
}
