package store

import (
	"context"
	"sync"

	"greatglobal/internal/billing/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

// InMemoryCustomerStore keeps customer accounts in registration order.
type InMemoryCustomerStore struct {
	mu        sync.RWMutex
	customers map[domain.Account]*models.CustomerAccount
	order     []domain.Account
}

func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{customers: make(map[domain.Account]*models.CustomerAccount)}
}

func (s *InMemoryCustomerStore) Create(_ context.Context, c *models.CustomerAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.Account]; ok {
		return sentinel.ErrConflict
	}
	s.customers[c.Account] = c.Clone()
	s.order = append(s.order, c.Account)
	return nil
}

func (s *InMemoryCustomerStore) FindByAccount(_ context.Context, account domain.Account) (*models.CustomerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[account]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return c.Clone(), nil
}

// Execute validates and mutates a copy of the customer, storing it only when
// validation passes.
func (s *InMemoryCustomerStore) Execute(_ context.Context, account domain.Account, validate func(*models.CustomerAccount) error, mutate func(*models.CustomerAccount)) (*models.CustomerAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[account]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	next := c.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	s.customers[account] = next
	return next.Clone(), nil
}

// ListAccounts returns every customer account key in registration order.
func (s *InMemoryCustomerStore) ListAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Account(nil), s.order...), nil
}
