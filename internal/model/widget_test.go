package model

import "testing"

func TestWidgetID(t *testing.T) {
	if got := WidgetID(7); got != "widget-7" {
		t.Errorf("WidgetID(7) = %q", got)
	}
}

func TestWidgetIDSuffix(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"widget-1", 1},
		{"widget-42", 42},
		{"widget-0", 0},
		{"widget-", 0},
		{"widget-abc", 0},
		{"widget--3", 0},
		{"gadget-5", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := WidgetIDSuffix(tt.id); got != tt.want {
			t.Errorf("WidgetIDSuffix(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}
