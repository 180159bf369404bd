// Package service implements the package subscription workflow: users request
// a policy package, admins approve or reject, and users may withdraw a request
// that is still pending.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	identity "greatglobal/internal/identity/models"
	packagesmetrics "greatglobal/internal/packages/metrics"
	"greatglobal/internal/packages/models"
	policy "greatglobal/internal/policy/models"
	"greatglobal/internal/platform/tracing"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	platformtx "greatglobal/pkg/platform/tx"
	"greatglobal/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, sub *models.PackageSubscription) error
	FindPending(ctx context.Context, email string, packageID domain.PolicyID) (*models.PackageSubscription, error)
	ExecutePending(ctx context.Context, email string, packageID domain.PolicyID, validate func(*models.PackageSubscription) error, mutate func(*models.PackageSubscription)) (*models.PackageSubscription, error)
	ListByEmail(ctx context.Context, email string) ([]*models.PackageSubscription, error)
	ListAll(ctx context.Context) ([]*models.PackageSubscription, error)
}

type Authorizer interface {
	RequireSession(ctx context.Context, account domain.Account, role domain.Role) error
	ProfileOf(ctx context.Context, account domain.Account) (*identity.UserProfile, error)
}

type PolicyLookup interface {
	GetPolicy(ctx context.Context, id domain.PolicyID) (*policy.Policy, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        *packagesmetrics.Metrics
	tx             StoreTx
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) { c.logger = logger }
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(c *serviceConfig) { c.auditPublisher = publisher }
}

func WithMetrics(m *packagesmetrics.Metrics) Option {
	return func(c *serviceConfig) { c.metrics = m }
}

func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) { c.tx = tx }
}

type Service struct {
	store    Store
	auth     Authorizer
	policies PolicyLookup
	logger   *slog.Logger
	emitter  *audit.Emitter
	metrics  *packagesmetrics.Metrics
	tx       StoreTx
}

func New(store Store, auth Authorizer, policies PolicyLookup, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tx == nil {
		cfg.tx = platformtx.NewMemoryTx(0)
	}
	return &Service{
		store:    store,
		auth:     auth,
		policies: policies,
		logger:   cfg.logger,
		emitter:  audit.NewEmitter(cfg.logger, cfg.auditPublisher),
		metrics:  cfg.metrics,
		tx:       cfg.tx,
	}
}

func wrapPackageErr(err error, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "no pending package request")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeInvalidState, "package request already pending")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
}

// signedInUser returns the profile behind the caller's user session.
func (s *Service) signedInUser(ctx context.Context, caller domain.Account) (*identity.UserProfile, error) {
	if err := s.auth.RequireSession(ctx, caller, domain.RoleUser); err != nil {
		return nil, err
	}
	profile, err := s.auth.ProfileOf(ctx, caller)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeForbidden, "caller is not a registered user")
		}
		return nil, err
	}
	return profile, nil
}

// SubscribeToPackage files a pending request for an active policy package.
func (s *Service) SubscribeToPackage(ctx context.Context, caller domain.Account, packageID domain.PolicyID) (sub *models.PackageSubscription, err error) {
	ctx, span := tracing.Start(ctx, "packages.SubscribeToPackage")
	defer func() { tracing.End(span, err) }()

	profile, err := s.signedInUser(ctx, caller)
	if err != nil {
		return nil, err
	}
	p, err := s.policies.GetPolicy(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, dErrors.New(dErrors.CodeInvalidState, "package is not active")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := models.NewPackageSubscription(profile.Email, packageID, caller, requestcontext.Now(txCtx))
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, dErrors.Message(err))
		}
		if err := s.store.Create(txCtx, req); err != nil {
			return wrapPackageErr(err, "create package request")
		}
		sub = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementRequests()
	}
	s.emitter.Emit(ctx, audit.EventPackageRequested,
		"account", caller,
		"subject", "package:"+packageID.String(),
	)
	return sub, nil
}

// ApproveSubscription approves the pending request for (email, package).
func (s *Service) ApproveSubscription(ctx context.Context, caller domain.Account, email string, packageID domain.PolicyID) (sub *models.PackageSubscription, err error) {
	ctx, span := tracing.Start(ctx, "packages.ApproveSubscription")
	defer func() { tracing.End(span, err) }()

	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.decide(ctx, caller, identity.NormalizeEmail(email), packageID, "approved", audit.EventPackageApproved,
		func(p *models.PackageSubscription, now time.Time) { p.Approve(caller, now) })
}

// RejectSubscription cancels another user's pending request.
func (s *Service) RejectSubscription(ctx context.Context, caller domain.Account, email string, packageID domain.PolicyID) (sub *models.PackageSubscription, err error) {
	ctx, span := tracing.Start(ctx, "packages.RejectSubscription")
	defer func() { tracing.End(span, err) }()

	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.decide(ctx, caller, identity.NormalizeEmail(email), packageID, "rejected", audit.EventPackageRejected,
		func(p *models.PackageSubscription, now time.Time) { p.Cancel(caller, now) })
}

// CancelSubscription withdraws the caller's own pending request.
func (s *Service) CancelSubscription(ctx context.Context, caller domain.Account, packageID domain.PolicyID) (sub *models.PackageSubscription, err error) {
	ctx, span := tracing.Start(ctx, "packages.CancelSubscription")
	defer func() { tracing.End(span, err) }()

	profile, err := s.signedInUser(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.decide(ctx, caller, profile.Email, packageID, "cancelled", audit.EventPackageCancelled,
		func(p *models.PackageSubscription, now time.Time) { p.Cancel(caller, now) })
}

func (s *Service) decide(ctx context.Context, caller domain.Account, email string, packageID domain.PolicyID, outcome string, event audit.AuditEvent, apply func(*models.PackageSubscription, time.Time)) (*models.PackageSubscription, error) {
	var sub *models.PackageSubscription
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		p, err := s.store.ExecutePending(txCtx, email, packageID,
			func(p *models.PackageSubscription) error { return p.CanDecide() },
			func(p *models.PackageSubscription) { apply(p, now) },
		)
		if err != nil {
			return wrapPackageErr(err, "decide package request")
		}
		sub = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementDecisions(outcome)
	}
	s.emitter.Emit(ctx, event,
		"account", sub.Account,
		"actor", caller,
		"subject", "package:"+packageID.String(),
	)
	return sub, nil
}

// ViewPackages partitions the caller's own requests by status.
func (s *Service) ViewPackages(ctx context.Context, caller domain.Account) (models.Partitions, error) {
	profile, err := s.signedInUser(ctx, caller)
	if err != nil {
		return models.Partitions{}, err
	}
	subs, err := s.store.ListByEmail(ctx, profile.Email)
	if err != nil {
		return models.Partitions{}, wrapPackageErr(err, "list package requests")
	}
	return models.Partition(subs), nil
}

// ViewAllSubscriptions partitions every user's requests by status.
func (s *Service) ViewAllSubscriptions(ctx context.Context, caller domain.Account) (models.Partitions, error) {
	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return models.Partitions{}, err
	}
	subs, err := s.store.ListAll(ctx)
	if err != nil {
		return models.Partitions{}, wrapPackageErr(err, "list package requests")
	}
	return models.Partition(subs), nil
}
