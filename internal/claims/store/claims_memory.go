package store

import (
	"context"
	"sync"

	"greatglobal/internal/claims/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

type ledger struct {
	claims []*models.Claim
}

// InMemoryClaimStore keeps each account's claims in id order. Ids are the
// index into that account's ledger.
type InMemoryClaimStore struct {
	mu       sync.RWMutex
	accounts map[domain.Account]*ledger
	order    []domain.Account
}

func NewInMemoryClaimStore() *InMemoryClaimStore {
	return &InMemoryClaimStore{accounts: make(map[domain.Account]*ledger)}
}

// NextID returns the id the account's next claim will get.
func (s *InMemoryClaimStore) NextID(_ context.Context, account domain.Account) (domain.ClaimID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.accounts[account]
	if !ok {
		return 0, nil
	}
	return domain.ClaimID(len(l.claims)), nil
}

func (s *InMemoryClaimStore) Create(_ context.Context, c *models.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.accounts[c.Account]
	if !ok {
		l = &ledger{}
		s.accounts[c.Account] = l
		s.order = append(s.order, c.Account)
	}
	if int(c.ID) != len(l.claims) {
		return sentinel.ErrConflict
	}
	cp := *c
	l.claims = append(l.claims, &cp)
	return nil
}

func (s *InMemoryClaimStore) lookup(account domain.Account, id domain.ClaimID) (*models.Claim, bool) {
	l, ok := s.accounts[account]
	if !ok || uint64(id) >= uint64(len(l.claims)) {
		return nil, false
	}
	return l.claims[id], true
}

func (s *InMemoryClaimStore) FindByID(_ context.Context, account domain.Account, id domain.ClaimID) (*models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.lookup(account, id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryClaimStore) Execute(_ context.Context, account domain.Account, id domain.ClaimID, validate func(*models.Claim) error, mutate func(*models.Claim)) (*models.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.lookup(account, id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	if err := validate(&cp); err != nil {
		return nil, err
	}
	mutate(&cp)
	*c = cp
	return &cp, nil
}

// ListPending returns the account's pending claims in id order.
func (s *InMemoryClaimStore) ListPending(_ context.Context, account domain.Account) ([]*models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingOf(account), nil
}

// ListAllPending returns pending claims grouped by account in first-claim order.
func (s *InMemoryClaimStore) ListAllPending(_ context.Context) ([]*models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Claim
	for _, account := range s.order {
		out = append(out, s.pendingOf(account)...)
	}
	return out, nil
}

func (s *InMemoryClaimStore) pendingOf(account domain.Account) []*models.Claim {
	l, ok := s.accounts[account]
	if !ok {
		return nil
	}
	var out []*models.Claim
	for _, c := range l.claims {
		if c.IsPending() {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out
}
