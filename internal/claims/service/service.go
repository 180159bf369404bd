// Package service implements the claim ledger: per-account claims, admin
// adjudication and the funding pool that pays approved claims.
package service

import (
	"context"
	"errors"
	"log/slog"

	claimsmetrics "greatglobal/internal/claims/metrics"
	"greatglobal/internal/claims/models"
	identity "greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	platformtx "greatglobal/pkg/platform/tx"
)

type ClaimStore interface {
	NextID(ctx context.Context, account domain.Account) (domain.ClaimID, error)
	Create(ctx context.Context, c *models.Claim) error
	FindByID(ctx context.Context, account domain.Account, id domain.ClaimID) (*models.Claim, error)
	Execute(ctx context.Context, account domain.Account, id domain.ClaimID, validate func(*models.Claim) error, mutate func(*models.Claim)) (*models.Claim, error)
	ListPending(ctx context.Context, account domain.Account) ([]*models.Claim, error)
	ListAllPending(ctx context.Context) ([]*models.Claim, error)
}

type PoolStore interface {
	Get(ctx context.Context) (models.FundingPool, error)
	Execute(ctx context.Context, validate func(*models.FundingPool) error, mutate func(*models.FundingPool)) (models.FundingPool, error)
}

// Authorizer is the read-only view of the identity registry claims need.
type Authorizer interface {
	RequireSession(ctx context.Context, account domain.Account, role domain.Role) error
	ProfileOf(ctx context.Context, account domain.Account) (*identity.UserProfile, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        *claimsmetrics.Metrics
	tx             StoreTx
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) { c.logger = logger }
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(c *serviceConfig) { c.auditPublisher = publisher }
}

func WithMetrics(m *claimsmetrics.Metrics) Option {
	return func(c *serviceConfig) { c.metrics = m }
}

func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) { c.tx = tx }
}

type Service struct {
	claims  ClaimStore
	pool    PoolStore
	auth    Authorizer
	logger  *slog.Logger
	emitter *audit.Emitter
	metrics *claimsmetrics.Metrics
	tx      StoreTx
}

func New(claims ClaimStore, pool PoolStore, auth Authorizer, opts ...Option) *Service {
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
		claims:  claims,
		pool:    pool,
		auth:    auth,
		logger:  cfg.logger,
		emitter: audit.NewEmitter(cfg.logger, cfg.auditPublisher),
		metrics: cfg.metrics,
		tx:      cfg.tx,
	}
}

func wrapClaimErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "claim not found")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
}

func requirePositive(amount domain.Amount) error {
	if !amount.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "amount must be greater than zero")
	}
	return nil
}

// requireRegisteredUser checks for a user session backed by a profile.
func (s *Service) requireRegisteredUser(ctx context.Context, caller domain.Account) error {
	if err := s.auth.RequireSession(ctx, caller, domain.RoleUser); err != nil {
		return err
	}
	if _, err := s.auth.ProfileOf(ctx, caller); err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeForbidden, "caller is not a registered user")
		}
		return err
	}
	return nil
}
