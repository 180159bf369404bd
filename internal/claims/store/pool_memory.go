package store

import (
	"context"
	"sync"

	"greatglobal/internal/claims/models"
)

// InMemoryPoolStore holds the single funding pool.
type InMemoryPoolStore struct {
	mu   sync.RWMutex
	pool models.FundingPool
}

func NewInMemoryPoolStore() *InMemoryPoolStore {
	return &InMemoryPoolStore{}
}

func (s *InMemoryPoolStore) Get(_ context.Context) (models.FundingPool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pool, nil
}

func (s *InMemoryPoolStore) Execute(_ context.Context, validate func(*models.FundingPool) error, mutate func(*models.FundingPool)) (models.FundingPool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.pool
	if err := validate(&next); err != nil {
		return s.pool, err
	}
	mutate(&next)
	s.pool = next
	return next, nil
}
