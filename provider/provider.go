// Package provider defines the byte store behind mackay.Memo.
//
// A Provider stores framed symbol sequences under keys in the "memo:<ns>:"
// keyspace. Values must come back exactly as they were stored: no added
// metadata, no transcoding, no mutation. A store that compresses internally must
// fully reverse it on Get. Foreign values under the memo keyspace fail frame
// validation and are deleted by Memo.
package provider

import (
	"context"
	"time"
)

// Provider is a byte store with per-entry TTL. It must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// Transport or backend failures return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value for ttl (ttl <= 0 means no expiry where supported).
	// cost is a hint and may be ignored. ok=false means the store refused the
	// write (admission, eviction pressure) without failing.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key. Missing keys are not an error.
	Del(ctx context.Context, key string) error

	// Close releases resources owned by the provider.
	Close(ctx context.Context) error
}
