package history

import (
	"sync"
	"time"
)

// Entry is one recorded conversation turn.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"` // always UTC
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Intent    string    `json:"intent"`
}

// MemoryStore is a concurrency-safe in-memory conversation log.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry

	// retention configuration
	maxEntries int           // max number of entries kept (0 = unlimited)
	maxAge     time.Duration // optional max age for entries (0 = unlimited)
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxEntries is <= 0, it is treated as unlimited.
func NewMemoryStore(maxEntries int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

// Append records a new entry and enforces retention.
func (s *MemoryStore) Append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)

	// Enforce retention by count.
	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		over := len(s.entries) - s.maxEntries
		s.entries = s.entries[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(s.entries); i++ {
			if !s.entries[i].Timestamp.Before(cutoff) {
				break
			}
		}
		if i > 0 {
			s.entries = s.entries[i:]
		}
	}
}

// List returns entries in insertion order, optionally filtered by user and
// limited to the most recent limit entries. An empty userID matches all
// users; a limit <= 0 means no limit.
func (s *MemoryStore) List(userID string, limit int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if userID != "" && e.UserID != userID {
			continue
		}
		result = append(result, e)
	}

	if limit > 0 && len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result
}

// Clear removes entries for the given user, or all entries when userID is
// empty.
func (s *MemoryStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID == "" {
		s.entries = nil
		return
	}

	var kept []Entry
	for _, e := range s.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Len reports the number of retained entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// MaxEntries reports the configured retention count.
func (s *MemoryStore) MaxEntries() int {
	return s.maxEntries
}
