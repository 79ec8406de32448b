package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, userID string, ts time.Time) Entry {
	return Entry{
		ID:        id,
		Timestamp: ts,
		UserID:    userID,
		Message:   "msg-" + id,
		Response:  "resp-" + id,
		Intent:    "fallback",
	}
}

func TestAppendEnforcesCountRetention(t *testing.T) {
	s := NewMemoryStore(3, 0)

	now := time.Now().UTC()
	for i := 1; i <= 5; i++ {
		s.Append(entry(fmt.Sprintf("%d", i), "alice", now))
	}

	require.Equal(t, 3, s.Len())
	got := s.List("", 0)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "5", got[2].ID)
}

func TestAppendEnforcesAgeRetention(t *testing.T) {
	s := NewMemoryStore(0, time.Minute)

	now := time.Now().UTC()
	s.Append(entry("old", "alice", now.Add(-2*time.Minute)))
	s.Append(entry("fresh", "alice", now))

	got := s.List("", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}

func TestListFiltersByUser(t *testing.T) {
	s := NewMemoryStore(10, 0)
	now := time.Now().UTC()
	s.Append(entry("1", "alice", now))
	s.Append(entry("2", "bob", now))
	s.Append(entry("3", "alice", now))

	alice := s.List("alice", 0)
	require.Len(t, alice, 2)
	assert.Equal(t, "1", alice[0].ID)
	assert.Equal(t, "3", alice[1].ID)

	assert.Len(t, s.List("", 0), 3)
	assert.Empty(t, s.List("carol", 0))
}

func TestListLimitKeepsMostRecent(t *testing.T) {
	s := NewMemoryStore(10, 0)
	now := time.Now().UTC()
	for i := 1; i <= 4; i++ {
		s.Append(entry(fmt.Sprintf("%d", i), "alice", now))
	}

	got := s.List("alice", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestClear(t *testing.T) {
	s := NewMemoryStore(10, 0)
	now := time.Now().UTC()
	s.Append(entry("1", "alice", now))
	s.Append(entry("2", "bob", now))

	s.Clear("alice")
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "bob", s.List("", 0)[0].UserID)

	s.Clear("")
	assert.Equal(t, 0, s.Len())
}

func TestUnlimitedRetention(t *testing.T) {
	s := NewMemoryStore(0, 0)
	now := time.Now().UTC()
	for i := 0; i < 100; i++ {
		s.Append(entry(fmt.Sprintf("%d", i), "alice", now))
	}
	assert.Equal(t, 100, s.Len())
}
