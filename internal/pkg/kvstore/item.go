package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// GetItem decodes the value stored under key. It returns def when the key is
// absent, unreadable or undecodable.
func GetItem[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("kvstore get failed", "key", key, "error", err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Warn("kvstore decode failed", "key", key, "error", err)
		return def
	}
	return value
}

// SetItem encodes value and stores it under key. Failures are logged.
func SetItem[T any](ctx context.Context, s Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("kvstore encode failed", "key", key, "error", err)
		return
	}
	if err := s.Set(ctx, key, raw); err != nil {
		slog.Warn("kvstore set failed", "key", key, "error", err)
	}
}

// RemoveItem deletes key. Failures are logged.
func RemoveItem(ctx context.Context, s Store, key string) {
	if err := s.Remove(ctx, key); err != nil {
		slog.Warn("kvstore remove failed", "key", key, "error", err)
	}
}
