package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// GetJSON decodes the value under key into v. It reports false without error
// when the key does not exist.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	b, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(ctx, key, b)
}
