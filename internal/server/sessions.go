package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/docnav/internal/sidebar"
	"github.com/ziadkadry99/docnav/internal/site"
)

const (
	// DefaultSessionTTL is how long an unused session is kept.
	DefaultSessionTTL = 30 * time.Minute
	// DefaultMaxSessions caps the number of open sessions.
	DefaultMaxSessions = 1000
)

type sessionEntry struct {
	sess     *sidebar.Session
	lastUsed time.Time
}

// SessionStore tracks open sidebar sessions by id. Each session builds its
// sidebar once; closing it drops the cached sidebar. Sessions idle for longer
// than the TTL expire, and opening a session beyond the cap evicts the least
// recently used one.
type SessionStore struct {
	data *site.Data
	ttl  time.Duration
	max  int
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessionStore returns an empty store over data. A non-positive ttl or max
// selects the default.
func NewSessionStore(data *site.Data, ttl time.Duration, max int) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &SessionStore{
		data:     data,
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// Open starts a session for the given locale ("" for the default).
func (s *SessionStore) Open(localeID string) (string, *sidebar.Session, error) {
	sess, err := s.data.NewSession(localeID)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	if len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	s.sessions[id] = &sessionEntry{sess: sess, lastUsed: now}
	return id, sess, nil
}

// Get returns the session with the given id and marks it as used.
func (s *SessionStore) Get(id string) (*sidebar.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastUsed) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	e.lastUsed = now
	return e.sess, true
}

// Close ends a session. It reports whether the session existed.
func (s *SessionStore) Close(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Sweep drops expired sessions and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

// Len returns the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastUsed) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range s.sessions {
		if oldestID == "" || e.lastUsed.Before(oldest) {
			oldestID, oldest = id, e.lastUsed
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}
