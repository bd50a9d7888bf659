package ports

import (
	"context"
	"time"
)

// DedupStore records processed ledger entries so side effects fire at
// most once under the subscription's at-least-once delivery.
type DedupStore interface {
	// FirstSeen atomically records key and reports whether it was new.
	// Returns true exactly once per key within ttl.
	FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
