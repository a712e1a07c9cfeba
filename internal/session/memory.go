package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	draft   Draft
	expires time.Time
}

// MemoryStore is the single-process Store. Entries live as long as the
// session cookie that points at them.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, d Draft) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	e := memoryEntry{draft: d}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	s.entries[sessionID] = e
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[strings.TrimSpace(sessionID)]
	if !ok || s.expiredLocked(e) {
		return Draft{}, ErrMissing
	}
	return e.draft, nil
}

func (s *MemoryStore) expiredLocked(e memoryEntry) bool {
	return !e.expires.IsZero() && s.now().After(e.expires)
}

func (s *MemoryStore) sweepLocked() {
	for id, e := range s.entries {
		if s.expiredLocked(e) {
			delete(s.entries, id)
		}
	}
}
