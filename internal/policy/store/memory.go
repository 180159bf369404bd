package store

import (
	"context"
	"fmt"
	"sync"

	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

// InMemoryPolicyStore keeps policies in insertion order. Returned policies are copies.
type InMemoryPolicyStore struct {
	mu       sync.RWMutex
	policies map[domain.PolicyID]*models.Policy
	order    []domain.PolicyID
	next     domain.PolicyID
}

func NewInMemoryPolicyStore() *InMemoryPolicyStore {
	return &InMemoryPolicyStore{policies: make(map[domain.PolicyID]*models.Policy)}
}

// Create builds a policy under the next sequential id and stores it. The first
// id is 0. The id is only consumed when build succeeds.
func (s *InMemoryPolicyStore) Create(_ context.Context, build func(domain.PolicyID) (*models.Policy, error)) (*models.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	if _, ok := s.policies[id]; ok {
		return nil, sentinel.ErrConflict
	}
	p, err := build(id)
	if err != nil {
		return nil, err
	}
	if p.ID != id {
		return nil, fmt.Errorf("policy built with id %d, want %d: %w", p.ID, id, sentinel.ErrInvalidState)
	}
	cp := *p
	s.policies[id] = &cp
	s.order = append(s.order, id)
	s.next++
	out := cp
	return &out, nil
}

func (s *InMemoryPolicyStore) FindByID(_ context.Context, id domain.PolicyID) (*models.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Execute loads the policy, runs validate and then mutate on it, and stores the result.
func (s *InMemoryPolicyStore) Execute(_ context.Context, id domain.PolicyID, validate func(*models.Policy) error, mutate func(*models.Policy)) (*models.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	if err := validate(&cp); err != nil {
		return nil, err
	}
	mutate(&cp)
	s.policies[id] = &cp
	out := cp
	return &out, nil
}

// ListByActive returns the policies whose Active flag equals active, in id order.
func (s *InMemoryPolicyStore) ListByActive(_ context.Context, active bool) ([]*models.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Policy, 0, len(s.order))
	for _, id := range s.order {
		p := s.policies[id]
		if p.Active == active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
