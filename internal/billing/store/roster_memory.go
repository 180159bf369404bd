package store

import (
	"context"
	"sync"

	"greatglobal/pkg/domain"
)

// InMemoryRoster is the billing admin list. It starts with the owner.
type InMemoryRoster struct {
	mu      sync.RWMutex
	members []domain.Account
	index   map[domain.Account]struct{}
}

func NewInMemoryRoster(owner domain.Account) *InMemoryRoster {
	return &InMemoryRoster{
		members: []domain.Account{owner},
		index:   map[domain.Account]struct{}{owner: {}},
	}
}

// Add reports whether account was newly added.
func (r *InMemoryRoster) Add(_ context.Context, account domain.Account) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[account]; ok {
		return false, nil
	}
	r.index[account] = struct{}{}
	r.members = append(r.members, account)
	return true, nil
}

func (r *InMemoryRoster) Contains(_ context.Context, account domain.Account) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[account]
	return ok, nil
}

func (r *InMemoryRoster) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Account(nil), r.members...), nil
}
