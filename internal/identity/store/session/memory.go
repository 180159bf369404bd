package session

import (
	"context"
	"sync"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

// InMemorySessionStore holds at most one session per account.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.Account]models.Session
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[domain.Account]models.Session)}
}

func (s *InMemorySessionStore) Get(_ context.Context, account domain.Account) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[account]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &sess, nil
}

// Save replaces any existing session for the account.
func (s *InMemorySessionStore) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Account] = *sess
	return nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, account)
	return nil
}
