package store_test

import (
	"context"
	"testing"

	"github.com/dashy/dashy/internal/store"
	"github.com/dashy/dashy/tests/testutil"
)

func TestGetAbsentKey(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	value, err := s.Get(ctx, "never-set")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "" {
		t.Errorf("absent key returned %q, want empty string", value)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, store.KeyNotes, "remember the milk"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := s.Get(ctx, store.KeyNotes)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "remember the milk" {
		t.Errorf("got %q", value)
	}
}

func TestSetReplacesPreviousValue(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "k", "two"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "two" {
		t.Errorf("got %q, want %q", value, "two")
	}
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	s := testutil.NewTestStore(t)

	if err := s.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	value, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "" {
		t.Errorf("deleted key returned %q", value)
	}
}

func TestGetJSON(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("absent key", func(t *testing.T) {
		var out payload
		ok, err := store.GetJSON(ctx, s, "absent", &out)
		if err != nil {
			t.Fatalf("GetJSON: %v", err)
		}
		if ok {
			t.Error("absent key reported present")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		in := payload{Name: "widgets", Count: 3}
		if err := store.SetJSON(ctx, s, "p", in); err != nil {
			t.Fatalf("SetJSON: %v", err)
		}
		var out payload
		ok, err := store.GetJSON(ctx, s, "p", &out)
		if err != nil {
			t.Fatalf("GetJSON: %v", err)
		}
		if !ok {
			t.Fatal("stored key reported absent")
		}
		if out != in {
			t.Errorf("got %+v, want %+v", out, in)
		}
	})

	t.Run("malformed value", func(t *testing.T) {
		if err := s.Set(ctx, "bad", "{not json"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		var out payload
		_, err := store.GetJSON(ctx, s, "bad", &out)
		if err == nil {
			t.Error("malformed value did not error")
		}
	})
}
