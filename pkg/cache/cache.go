// Package cache stores rendered artifacts between runs.
//
// Composing a layout is cheap; rasterizing a blueprint is not. The
// pipeline keys every artifact by a hash of the fully resolved spec plus
// the render options, so an edited layout or theme produces a new key and
// stale entries simply expire.
//
// Two implementations are provided: [FileCache] for the CLI and
// [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long artifacts stay cached unless configured otherwise.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
