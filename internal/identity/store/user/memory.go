package user

import (
	"context"
	"fmt"
	"sync"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

// InMemoryUserStore keeps profiles keyed by account with unique email and
// case-folded name indexes. Returned profiles are copies.
type InMemoryUserStore struct {
	mu      sync.RWMutex
	users   map[domain.Account]*models.UserProfile
	byEmail map[string]domain.Account
	byName  map[string]domain.Account
	order   []domain.Account
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:   make(map[domain.Account]*models.UserProfile),
		byEmail: make(map[string]domain.Account),
		byName:  make(map[string]domain.Account),
	}
}

// Create stores a new profile. A taken account is ErrConflict and a taken
// email is ErrAlreadyUsed. Names need not be unique; the name index keeps the
// earliest registrant.
func (s *InMemoryUserStore) Create(_ context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[profile.Account]; ok {
		return fmt.Errorf("account %s: %w", profile.Account, sentinel.ErrConflict)
	}
	email := models.NormalizeEmail(profile.Email)
	if _, ok := s.byEmail[email]; ok {
		return fmt.Errorf("email: %w", sentinel.ErrAlreadyUsed)
	}

	stored := clone(profile)
	s.users[profile.Account] = stored
	s.byEmail[email] = profile.Account
	if key := models.FoldName(profile.Name); key != "" {
		if _, taken := s.byName[key]; !taken {
			s.byName[key] = profile.Account
		}
	}
	s.order = append(s.order, profile.Account)
	return nil
}

func (s *InMemoryUserStore) FindByAccount(_ context.Context, account domain.Account) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.users[account]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(p), nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(s.users[account]), nil
}

func (s *InMemoryUserStore) FindByName(_ context.Context, name string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.byName[models.FoldName(name)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(s.users[account]), nil
}

// Execute runs validate then mutate on the stored profile under the write lock.
// Nothing is written when validate fails.
func (s *InMemoryUserStore) Execute(_ context.Context, account domain.Account, validate func(*models.UserProfile) error, mutate func(*models.UserProfile)) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.users[account]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	working := clone(p)
	if err := validate(working); err != nil {
		return nil, err
	}
	mutate(working)
	s.users[account] = working
	return clone(working), nil
}

// Delete removes a profile and its index entries. The name index falls back
// to the next registrant with the same name.
func (s *InMemoryUserStore) Delete(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.users[account]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.users, account)
	delete(s.byEmail, models.NormalizeEmail(p.Email))
	for i, a := range s.order {
		if a == account {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	key := models.FoldName(p.Name)
	if s.byName[key] != account {
		return nil
	}
	delete(s.byName, key)
	for _, a := range s.order {
		if models.FoldName(s.users[a].Name) == key {
			s.byName[key] = a
			break
		}
	}
	return nil
}

// ListAccounts returns registered accounts in registration order.
func (s *InMemoryUserStore) ListAccounts(_ context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, len(s.order))
	copy(out, s.order)
	return out, nil
}

func clone(p *models.UserProfile) *models.UserProfile {
	c := *p
	c.PasswordHash = append([]byte(nil), p.PasswordHash...)
	return &c
}
