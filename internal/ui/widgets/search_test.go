package widgets

import (
	"reflect"
	"testing"
)

func TestRememberPrependsMostRecent(t *testing.T) {
	s := &Search{history: []string{"b", "c"}}

	s.remember("a")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(s.history, want) {
		t.Errorf("history = %v, want %v", s.history, want)
	}
}

func TestRememberDeduplicates(t *testing.T) {
	s := &Search{history: []string{"a", "b", "c"}}

	s.remember("b")
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(s.history, want) {
		t.Errorf("history = %v, want %v", s.history, want)
	}
}

func TestRememberCapsHistory(t *testing.T) {
	s := &Search{history: []string{"q1", "q2", "q3", "q4", "q5"}}

	s.remember("q6")
	if len(s.history) != searchHistoryCap {
		t.Fatalf("history length = %d, want %d", len(s.history), searchHistoryCap)
	}
	want := []string{"q6", "q1", "q2", "q3", "q4"}
	if !reflect.DeepEqual(s.history, want) {
		t.Errorf("history = %v, want %v", s.history, want)
	}
}
