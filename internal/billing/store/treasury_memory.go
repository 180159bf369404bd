package store

import (
	"context"
	"sync"

	"greatglobal/internal/billing/models"
)

type InMemoryTreasuryStore struct {
	mu       sync.RWMutex
	treasury models.Treasury
}

func NewInMemoryTreasuryStore() *InMemoryTreasuryStore {
	return &InMemoryTreasuryStore{}
}

func (s *InMemoryTreasuryStore) Get(_ context.Context) (models.Treasury, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.treasury, nil
}

func (s *InMemoryTreasuryStore) Execute(_ context.Context, validate func(*models.Treasury) error, mutate func(*models.Treasury)) (models.Treasury, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.treasury
	if err := validate(&next); err != nil {
		return s.treasury, err
	}
	mutate(&next)
	s.treasury = next
	return next, nil
}
