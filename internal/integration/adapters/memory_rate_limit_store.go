package adapters

import (
	"context"
	"sync"
	"time"

	"github.com/budget-control/backend/internal/application/adapter"
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryRateLimitStore is a process-local fixed window counter.
type MemoryRateLimitStore struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
	now            func() time.Time
}

var _ adapter.RateLimitStore = (*MemoryRateLimitStore)(nil)

// NewMemoryRateLimitStore creates a store allowing maxAttempts per key within each window.
func NewMemoryRateLimitStore(maxAttempts int, windowDuration time.Duration) *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Allow records an attempt for key and reports whether it is within the limit.
func (s *MemoryRateLimitStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(s.windowDuration),
		}
		return true, nil
	}

	if entry.attempts < s.maxAttempts {
		entry.attempts++
		return true, nil
	}

	return false, nil
}

// Reset clears the store state.
func (s *MemoryRateLimitStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired entries.
func (s *MemoryRateLimitStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (s *MemoryRateLimitStore) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}
