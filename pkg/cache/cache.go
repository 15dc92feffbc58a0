// Package cache provides simple byte caching for the CLI layer.
//
// The layout command uses it to skip recomputing layouts for unchanged
// inputs: entries are keyed by a hash of the tree file content plus the
// layout options. The core packages never touch a cache; all their
// operations are pure functions of their inputs.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional
// expiration. A zero ttl means the entry never expires.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. ttl <= 0 disables expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
