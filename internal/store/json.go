package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetJSON reads the value under key and unmarshals it into out. It
// returns false when the key is absent. Malformed stored JSON is
// returned as an error so the caller can fall back to defaults.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decoding key %q: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and stores it under key as a whole-value snapshot.
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}
	return s.Set(ctx, key, string(data))
}
