package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"greatglobal/internal/identity/models"
	"greatglobal/internal/platform/tracing"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	"greatglobal/pkg/requestcontext"
)

// Register creates the caller's profile and starts a user session.
func (s *Service) Register(ctx context.Context, caller domain.Account, req models.RegisterRequest) (profile *models.UserProfile, err error) {
	ctx, span := tracing.Start(ctx, "identity.Register")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "password is required")
	}
	if req.Age < s.minAge {
		return nil, dErrors.New(dErrors.CodeValidation, "age is below the registration minimum")
	}
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.FindByAccount(txCtx, caller); err == nil {
			return dErrors.New(dErrors.CodeValidation, "account already registered")
		} else if !errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
		}

		now := requestcontext.Now(txCtx)
		p, err := models.NewUserProfile(caller, req.Name, req.Email, req.Age, s.minAge, hash, req.RefundAddress, now)
		if err != nil {
			if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
				return dErrors.New(dErrors.CodeValidation, dErrors.Message(err))
			}
			return err
		}
		if err := s.users.Create(txCtx, p); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrAlreadyUsed):
				return dErrors.New(dErrors.CodeValidation, "email already registered")
			case errors.Is(err, sentinel.ErrConflict):
				return dErrors.New(dErrors.CodeValidation, "account already registered")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
		}
		sess := models.NewSession(caller, domain.RoleUser, requestcontext.Device(txCtx), now)
		if err := s.sessions.Save(txCtx, sess); err != nil {
			if delErr := s.users.Delete(txCtx, caller); delErr != nil {
				err = errors.Join(err, delErr)
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to start session")
		}
		profile = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, audit.EventUserRegistered,
		"account", caller,
		"subject", "user:"+caller.String(),
	)
	if s.metrics != nil {
		s.metrics.IncrementUsersRegistered()
	}
	return profile, nil
}

// SignIn checks the password for an email or name and starts a user session.
// Signing in again while already signed in succeeds without a new event.
func (s *Service) SignIn(ctx context.Context, caller domain.Account, identifier, password string) (ok bool, err error) {
	ctx, span := tracing.Start(ctx, "identity.SignIn")
	defer func() { tracing.End(span, err) }()
	if s.metrics != nil {
		defer s.metrics.ObserveSignIn(time.Now())
	}

	if err := requireCaller(caller); err != nil {
		return false, err
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return false, dErrors.New(dErrors.CodeValidation, "identifier and password are required")
	}

	p, err := s.resolveIdentifier(ctx, caller, identifier)
	if err != nil {
		s.incrementSignIn(domain.RoleUser, "rejected")
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, invalidCredentials()
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	if !p.OwnedBy(caller) || bcrypt.CompareHashAndPassword(p.PasswordHash, []byte(password)) != nil {
		s.incrementSignIn(domain.RoleUser, "rejected")
		return false, invalidCredentials()
	}

	transitioned := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		role, err := s.currentRole(txCtx, caller)
		if err != nil {
			return err
		}
		if role == domain.RoleUser {
			return nil
		}
		sess := models.NewSession(caller, domain.RoleUser, requestcontext.Device(txCtx), requestcontext.Now(txCtx))
		if err := s.sessions.Save(txCtx, sess); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to start session")
		}
		transitioned = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.incrementSignIn(domain.RoleUser, "accepted")
	if transitioned {
		s.emitter.Emit(ctx, audit.EventUserSignedIn,
			"account", caller,
			"device", requestcontext.Device(ctx),
		)
	}
	return true, nil
}

// ResetPassword overwrites the password of a profile the caller owns. No
// session is required.
func (s *Service) ResetPassword(ctx context.Context, caller domain.Account, identifier, newPassword string) (err error) {
	ctx, span := tracing.Start(ctx, "identity.ResetPassword")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return err
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return dErrors.New(dErrors.CodeValidation, "identifier is required")
	}
	if newPassword == "" {
		return dErrors.New(dErrors.CodeValidation, "new password is required")
	}
	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.resolveIdentifier(txCtx, caller, identifier)
		if err != nil {
			return wrapUserErr(err, "load user")
		}
		if !p.OwnedBy(caller) {
			return dErrors.New(dErrors.CodeForbidden, "caller does not own this profile")
		}
		now := requestcontext.Now(txCtx)
		_, err = s.users.Execute(txCtx, p.Account,
			func(*models.UserProfile) error { return nil },
			func(u *models.UserProfile) { u.ApplyPasswordReset(hash, now) },
		)
		if err != nil {
			return wrapUserErr(err, "reset password")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, audit.EventPasswordReset, "account", caller)
	return nil
}

// LogoutUser ends the caller's user session.
func (s *Service) LogoutUser(ctx context.Context, caller domain.Account) error {
	return s.logout(ctx, caller, domain.RoleUser, audit.EventUserLoggedOut)
}

// LogoutAdmin ends the caller's admin session.
func (s *Service) LogoutAdmin(ctx context.Context, caller domain.Account) error {
	return s.logout(ctx, caller, domain.RoleAdmin, audit.EventAdminLoggedOut)
}

func (s *Service) logout(ctx context.Context, caller domain.Account, want domain.Role, event audit.AuditEvent) (err error) {
	ctx, span := tracing.Start(ctx, "identity.Logout")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return err
	}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		role, err := s.currentRole(txCtx, caller)
		if err != nil {
			return err
		}
		if role != want {
			return dErrors.New(dErrors.CodeInvalidState, "no active "+want.String()+" session")
		}
		if err := s.sessions.Delete(txCtx, caller); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to end session")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.emitter.Emit(ctx, event, "account", caller)
	return nil
}
