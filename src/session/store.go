// Package session holds the process-wide session store. Sessions are keyed
// by the OpenStack token; a second index maps the opaque cookie-carried
// session id to its token so handlers never see the token on the wire.
package session

import (
	"sync"
	"time"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
)

// Store is safe for concurrent use by multiple in-flight requests. Expiry
// is lazy: an expired entry is evicted on the first Get after its deadline.
type Store struct {
	mu      sync.Mutex
	byToken map[string]models.Session
	byID    map[string]string // session id -> token

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		byToken: make(map[string]models.Session),
		byID:    make(map[string]string),
		now:     time.Now,
	}
}

// Put inserts or overwrites the session for its token. Overwriting drops
// the previous session's cookie-id mapping so stale ids stop resolving.
func (s *Store) Put(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byToken[session.Token]; ok {
		delete(s.byID, prev.ID)
	}
	s.byToken[session.Token] = session
	if session.ID != "" {
		s.byID[session.ID] = session.Token
	}
}

// Get returns the session for the token, or absent. Expired entries are
// removed as a side effect.
func (s *Store) Get(token string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getLocked(token)
}

// GetByID resolves a cookie-carried session id to its session, with the
// same lazy-expiry behavior as Get.
func (s *Store) GetByID(id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.byID[id]
	if !ok {
		return models.Session{}, false
	}
	return s.getLocked(token)
}

// Remove deletes the session for the token. Idempotent.
func (s *Store) Remove(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(token)
}

// RemoveByID deletes the session behind a cookie-carried id. Idempotent.
func (s *Store) RemoveByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.byID[id]; ok {
		s.removeLocked(token)
		return
	}
	delete(s.byID, id)
}

// Len reports the number of live entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byToken)
}

func (s *Store) getLocked(token string) (models.Session, bool) {
	session, ok := s.byToken[token]
	if !ok {
		return models.Session{}, false
	}
	if session.Expired(s.now()) {
		s.removeLocked(token)
		return models.Session{}, false
	}
	return session, true
}

func (s *Store) removeLocked(token string) {
	if session, ok := s.byToken[token]; ok {
		delete(s.byID, session.ID)
	}
	delete(s.byToken, token)
}
