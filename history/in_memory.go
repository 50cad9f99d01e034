package history

import (
	"context"
	"sync"
)

// InMemoryStore is a volatile Store implementation keeping records in a
// process-local map keyed by user. It is safe for concurrent access and best
// suited for tests or ephemeral demo servers. Each returned record is cloned
// to prevent external mutation of internal state.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string][]*Record
}

// NewInMemoryStore constructs an empty in-memory history store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string][]*Record)}
}

// Save implements Store. Records are kept in insertion order per user.
func (s *InMemoryStore) Save(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *rec
	s.records[rec.UserID] = append(s.records[rec.UserID], &clone)
	return nil
}

// List implements Store, returning clones newest first.
func (s *InMemoryStore) List(_ context.Context, userID string, limit, offset int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.records[userID]
	out := make([]*Record, 0, limit)
	for i := len(stored) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		clone := *stored[i]
		out = append(out, &clone)
	}
	return out, nil
}

// Count returns the number of records stored for userID.
func (s *InMemoryStore) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[userID])
}
