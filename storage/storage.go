// Package storage defines the key-value persistence contract the nutrition
// state is saved through, plus its backends.
//
// Every write replaces the whole value stored under a key; there are no
// partial updates. Implementations:
//   - Memory: process-local map, used by tests and as a fallback.
//   - Bolt: a single bbolt file bucket.
//   - Gorm: a settings table on postgres (or sqlite in tests).
//   - Mongo: one document per key.
//   - S3: one object per key under a prefix.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested key is absent.
var ErrNotFound = errors.New("key not found")

// KV persists opaque values by key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
