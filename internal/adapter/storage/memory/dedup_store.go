package memory

import (
	"context"
	"sync"
	"time"
)

// DedupStore is a process-local ports.DedupStore for deployments
// without Redis. Dedup state is lost on restart, which the monitor
// tolerates: redelivered events at worst produce duplicate
// notifications, never duplicate record mutations.
type DedupStore struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

// NewDedupStore creates an in-memory dedup store.
func NewDedupStore() *DedupStore {
	return &DedupStore{seen: make(map[string]time.Time)}
}

// FirstSeen records the key and reports whether it was new. Expired
// entries are reclaimed lazily on access.
func (s *DedupStore) FirstSeen(_ context.Context, key string, ttl time.Duration) (bool, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if exp, ok := s.seen[key]; ok && now.Before(exp) {
		return false, nil
	}

	// Sweep a handful of expired keys to bound growth without a
	// background goroutine.
	swept := 0
	for k, exp := range s.seen {
		if now.After(exp) {
			delete(s.seen, k)
			swept++
		}
		if swept >= 16 {
			break
		}
	}

	s.seen[key] = now.Add(ttl)
	return true, nil
}
