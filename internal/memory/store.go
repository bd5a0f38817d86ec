// Package memory provides the in-process conversation store.
//
// History lives only in memory and is lost on restart; persistence is out of
// scope for this service. Conversations are partitioned by session ID so
// concurrent clients never see each other's turns.
package memory

import (
	"sync"

	"github.com/optivex/lumexa-go/internal/models"
)

// DefaultLimit is the maximum number of turns retained per session.
const DefaultLimit = 100

// DefaultSession is used when a request carries no session ID. Requests
// without the X-Session-ID header all share this conversation, matching the
// behavior the original frontend relies on.
const DefaultSession = "default"

// Store holds bounded per-session conversation histories.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	limit    int
	sessions map[string][]models.Turn
}

// NewStore creates a store that keeps at most limit turns per session.
// A non-positive limit falls back to DefaultLimit.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{
		limit:    limit,
		sessions: make(map[string][]models.Turn),
	}
}

// Append adds a turn at the tail of the session's history, then truncates
// to the most recent limit entries (oldest evicted first).
func (s *Store) Append(sessionID string, turn models.Turn) {
	if sessionID == "" {
		sessionID = DefaultSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.sessions[sessionID], turn)
	if len(turns) > s.limit {
		// Copy instead of re-slicing so evicted turns can be collected.
		trimmed := make([]models.Turn, s.limit)
		copy(trimmed, turns[len(turns)-s.limit:])
		turns = trimmed
	}
	s.sessions[sessionID] = turns
}

// Recent returns the last n turns of a session in oldest-to-newest order.
// The result is a copy; mutating it does not affect the store.
func (s *Store) Recent(sessionID string, n int) []models.Turn {
	if sessionID == "" {
		sessionID = DefaultSession
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	if n > len(turns) {
		n = len(turns)
	}
	if n <= 0 {
		return []models.Turn{}
	}

	out := make([]models.Turn, n)
	copy(out, turns[len(turns)-n:])
	return out
}

// Len reports the number of turns currently held for a session.
func (s *Store) Len(sessionID string) int {
	if sessionID == "" {
		sessionID = DefaultSession
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[sessionID])
}
