// Package cache stores small values between runs.
//
// tablefit uses it to remember the last body height committed for a table,
// so a table that is opened again starts from a realistic height instead of
// the placeholder. Keys come from a [Keyer]; values are opaque bytes.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported through the bool,
	// not through the error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the resources of the cache.
	Close() error
}
