package store

import (
	"context"
	"sync"

	"greatglobal/internal/packages/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

type key struct {
	email     string
	packageID domain.PolicyID
}

// InMemoryPackageStore keeps every request in arrival order, decided ones
// included, and indexes the pending request per (email, package).
type InMemoryPackageStore struct {
	mu      sync.RWMutex
	records []*models.PackageSubscription
	pending map[key]int
}

func NewInMemoryPackageStore() *InMemoryPackageStore {
	return &InMemoryPackageStore{pending: make(map[key]int)}
}

// Create stores a pending request. A second pending request for the same
// key is a conflict.
func (s *InMemoryPackageStore) Create(_ context.Context, sub *models.PackageSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{sub.UserEmail, sub.PackageID}
	if _, ok := s.pending[k]; ok {
		return sentinel.ErrConflict
	}
	cp := *sub
	s.records = append(s.records, &cp)
	s.pending[k] = len(s.records) - 1
	return nil
}

func (s *InMemoryPackageStore) FindPending(_ context.Context, email string, packageID domain.PolicyID) (*models.PackageSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.pending[key{email, packageID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.records[i]
	return &cp, nil
}

// ExecutePending applies mutate to the pending request for the key. The
// pending index is dropped once the request leaves pending.
func (s *InMemoryPackageStore) ExecutePending(_ context.Context, email string, packageID domain.PolicyID, validate func(*models.PackageSubscription) error, mutate func(*models.PackageSubscription)) (*models.PackageSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{email, packageID}
	i, ok := s.pending[k]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.records[i]
	if err := validate(&cp); err != nil {
		return nil, err
	}
	mutate(&cp)
	*s.records[i] = cp
	if !cp.IsPending() {
		delete(s.pending, k)
	}
	return &cp, nil
}

func (s *InMemoryPackageStore) ListByEmail(_ context.Context, email string) ([]*models.PackageSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PackageSubscription
	for _, r := range s.records {
		if r.UserEmail == email {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemoryPackageStore) ListAll(_ context.Context) ([]*models.PackageSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PackageSubscription, 0, len(s.records))
	for _, r := range s.records {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}
