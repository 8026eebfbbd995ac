package memory

import (
	"context"
	"sync"
	"time"

	"askboard/contexts/identity-access/access-gate/domain/entities"
)

// Store is an in-memory session adapter for tests and local development
// wiring.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]entities.Session),
	}
}

// PutSession seeds or replaces a session keyed by its token.
func (s *Store) PutSession(session entities.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
}

// TerminateSession marks the session signed out at the given instant.
// Unknown tokens are ignored; sessions are never deleted.
func (s *Store) TerminateSession(token string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return
	}
	terminatedAt := at.UTC()
	session.TerminatedAt = &terminatedAt
	s.sessions[token] = session
}

func (s *Store) FindByToken(_ context.Context, token string) (entities.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return entities.Session{}, false, nil
	}
	return session, true, nil
}
