package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupStore implements ports.DedupStore using Redis SET NX, so
// dedup state is shared across monitor replicas and survives restarts
// up to the TTL.
type DedupStore struct {
	client *goredis.Client
	prefix string
}

// NewDedupStore creates a new Redis-backed dedup store.
func NewDedupStore(client *goredis.Client) *DedupStore {
	return &DedupStore{
		client: client,
		prefix: "dedup:",
	}
}

// FirstSeen atomically records the key and reports whether it was new.
func (s *DedupStore) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists: the entry was seen before.
			return false, nil
		}
		return false, fmt.Errorf("redis dedup check: %w", err)
	}
	return result == "OK", nil
}
