package service

import (
	"context"
	"errors"

	"greatglobal/internal/identity/models"
	"greatglobal/internal/platform/tracing"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	"greatglobal/pkg/requestcontext"
)

// AdminSignIn starts an admin session. The address must be on the roster and
// must be the caller itself.
func (s *Service) AdminSignIn(ctx context.Context, caller, address domain.Account) (err error) {
	ctx, span := tracing.Start(ctx, "identity.AdminSignIn")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return err
	}

	transitioned := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		isAdmin, err := s.admins.Contains(txCtx, address)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admin roster")
		}
		if !isAdmin || address != caller {
			return dErrors.New(dErrors.CodeForbidden, "address is not an admin")
		}
		role, err := s.currentRole(txCtx, caller)
		if err != nil {
			return err
		}
		if role == domain.RoleAdmin {
			return nil
		}
		sess := models.NewSession(caller, domain.RoleAdmin, requestcontext.Device(txCtx), requestcontext.Now(txCtx))
		if err := s.sessions.Save(txCtx, sess); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to start session")
		}
		transitioned = true
		return nil
	})
	if err != nil {
		s.incrementSignIn(domain.RoleAdmin, "rejected")
		return err
	}

	s.incrementSignIn(domain.RoleAdmin, "accepted")
	if transitioned {
		s.emitter.Emit(ctx, audit.EventAdminSignedIn, "account", caller)
	}
	return nil
}

func (s *Service) requireOwner(caller domain.Account) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	if caller != s.admins.Owner() {
		return dErrors.New(dErrors.CodeForbidden, "only the owner can change the admin roster")
	}
	return nil
}

// AssignAdmin adds address to the roster. Assigning an existing admin is a no-op.
func (s *Service) AssignAdmin(ctx context.Context, caller, address domain.Account) (err error) {
	ctx, span := tracing.Start(ctx, "identity.AssignAdmin")
	defer func() { tracing.End(span, err) }()

	if err := s.requireOwner(caller); err != nil {
		return err
	}
	if address.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "address is required")
	}

	added := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ok, err := s.admins.Add(txCtx, address)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to assign admin")
		}
		added = ok
		return nil
	})
	if err != nil || !added {
		return err
	}

	s.incrementAdminChange("assigned")
	s.emitter.Emit(ctx, audit.EventAdminAssigned, "account", address, "actor", caller)
	return nil
}

// RemoveAdmin drops address from the roster and ends any admin session it holds.
// The owner can never be removed.
func (s *Service) RemoveAdmin(ctx context.Context, caller, address domain.Account) (err error) {
	ctx, span := tracing.Start(ctx, "identity.RemoveAdmin")
	defer func() { tracing.End(span, err) }()

	if err := s.requireOwner(caller); err != nil {
		return err
	}
	if address == s.admins.Owner() {
		return dErrors.New(dErrors.CodeForbidden, "the owner cannot be removed")
	}

	// Session first, so a failed delete leaves the roster untouched.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		isAdmin, err := s.admins.Contains(txCtx, address)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admins")
		}
		if !isAdmin {
			return dErrors.New(dErrors.CodeNotFound, "address is not an admin")
		}
		role, err := s.currentRole(txCtx, address)
		if err != nil {
			return err
		}
		if role == domain.RoleAdmin {
			if err := s.sessions.Delete(txCtx, address); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to end admin session")
			}
		}
		if err := s.admins.Remove(txCtx, address); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "address is not an admin")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove admin")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.incrementAdminChange("removed")
	s.emitter.Emit(ctx, audit.EventAdminRemoved, "account", address, "actor", caller)
	return nil
}
