package service

import (
	"context"
	"errors"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	"greatglobal/pkg/platform/sentinel"
)

// Owner returns the immutable deploying account.
func (s *Service) Owner() domain.Account {
	return s.admins.Owner()
}

// CurrentSession returns the role bound to account, RoleNone when signed out.
func (s *Service) CurrentSession(ctx context.Context, account domain.Account) (domain.Role, error) {
	return s.currentRole(ctx, account)
}

// Session returns the full session, or nil when signed out.
func (s *Service) Session(ctx context.Context, account domain.Account) (*models.Session, error) {
	sess, err := s.sessions.Get(ctx, account)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return sess, nil
}

func (s *Service) IsAdmin(ctx context.Context, account domain.Account) (bool, error) {
	ok, err := s.admins.Contains(ctx, account)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admin roster")
	}
	return ok, nil
}

func (s *Service) Admins(ctx context.Context) (models.AdminSet, error) {
	set, err := s.admins.Snapshot(ctx)
	if err != nil {
		return models.AdminSet{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admin roster")
	}
	return set, nil
}

func (s *Service) Profile(ctx context.Context, account domain.Account) (*models.UserProfile, error) {
	p, err := s.users.FindByAccount(ctx, account)
	if err != nil {
		return nil, wrapUserErr(err, "load user")
	}
	return p, nil
}

func (s *Service) ProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	p, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrapUserErr(err, "load user")
	}
	return p, nil
}

// ListRegisteredAccounts returns accounts in registration order.
func (s *Service) ListRegisteredAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.users.ListAccounts(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	return accounts, nil
}

// RequireSession fails with a forbidden error unless account currently holds
// a session with the given role.
func (s *Service) RequireSession(ctx context.Context, account domain.Account, role domain.Role) error {
	if err := requireCaller(account); err != nil {
		return err
	}
	current, err := s.currentRole(ctx, account)
	if err != nil {
		return err
	}
	if current != role {
		return dErrors.New(dErrors.CodeForbidden, role.String()+" session required")
	}
	return nil
}

// ProfileOf is Profile under the name other components use.
func (s *Service) ProfileOf(ctx context.Context, account domain.Account) (*models.UserProfile, error) {
	return s.Profile(ctx, account)
}
