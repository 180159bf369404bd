package admin

import (
	"context"
	"sync"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

// InMemoryAdminStore holds the admin roster. The owner is seeded at
// construction and cannot be removed.
type InMemoryAdminStore struct {
	mu     sync.RWMutex
	owner  domain.Account
	admins []domain.Account
}

func NewInMemoryAdminStore(owner domain.Account) *InMemoryAdminStore {
	return &InMemoryAdminStore{owner: owner}
}

func (s *InMemoryAdminStore) Owner() domain.Account {
	return s.owner
}

// Add appends account and reports whether it was newly added.
func (s *InMemoryAdminStore) Add(_ context.Context, account domain.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account == s.owner || s.indexOf(account) >= 0 {
		return false, nil
	}
	s.admins = append(s.admins, account)
	return true, nil
}

func (s *InMemoryAdminStore) Remove(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account == s.owner {
		return sentinel.ErrInvalidState
	}
	i := s.indexOf(account)
	if i < 0 {
		return sentinel.ErrNotFound
	}
	s.admins = append(s.admins[:i], s.admins[i+1:]...)
	return nil
}

func (s *InMemoryAdminStore) Contains(_ context.Context, account domain.Account) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return account == s.owner || s.indexOf(account) >= 0, nil
}

func (s *InMemoryAdminStore) Snapshot(_ context.Context) (models.AdminSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.AdminSet{Owner: s.owner, Admins: append([]domain.Account(nil), s.admins...)}, nil
}

func (s *InMemoryAdminStore) indexOf(account domain.Account) int {
	for i, a := range s.admins {
		if a == account {
			return i
		}
	}
	return -1
}
