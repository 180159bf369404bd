// Package service implements the policy catalog. Writes require an admin
// session held in the identity registry.
package service

import (
	"context"
	"errors"
	"log/slog"

	"greatglobal/internal/platform/tracing"
	policymetrics "greatglobal/internal/policy/metrics"
	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	platformtx "greatglobal/pkg/platform/tx"
	"greatglobal/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, build func(domain.PolicyID) (*models.Policy, error)) (*models.Policy, error)
	FindByID(ctx context.Context, id domain.PolicyID) (*models.Policy, error)
	Execute(ctx context.Context, id domain.PolicyID, validate func(*models.Policy) error, mutate func(*models.Policy)) (*models.Policy, error)
	ListByActive(ctx context.Context, active bool) ([]*models.Policy, error)
}

// Authorizer is the read-only view of the identity registry this component needs.
type Authorizer interface {
	RequireSession(ctx context.Context, account domain.Account, role domain.Role) error
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        *policymetrics.Metrics
	tx             StoreTx
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) { c.logger = logger }
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(c *serviceConfig) { c.auditPublisher = publisher }
}

func WithMetrics(m *policymetrics.Metrics) Option {
	return func(c *serviceConfig) { c.metrics = m }
}

// WithTx replaces the default in-memory serializer, e.g. with a SQL transaction
// manager when the store is Postgres-backed.
func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) { c.tx = tx }
}

type Service struct {
	store   Store
	auth    Authorizer
	logger  *slog.Logger
	emitter *audit.Emitter
	metrics *policymetrics.Metrics
	tx      StoreTx
}

func New(store Store, auth Authorizer, opts ...Option) *Service {
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
		store:   store,
		auth:    auth,
		logger:  cfg.logger,
		emitter: audit.NewEmitter(cfg.logger, cfg.auditPublisher),
		metrics: cfg.metrics,
		tx:      cfg.tx,
	}
}

func wrapPolicyErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "policy not found")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
}

func validateInput(in models.PolicyInput) error {
	if err := in.Validate(); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return dErrors.New(dErrors.CodeValidation, dErrors.Message(err))
		}
		return err
	}
	return nil
}

// CreatePolicy adds a policy under the next sequential id.
func (s *Service) CreatePolicy(ctx context.Context, caller domain.Account, in models.PolicyInput) (policy *models.Policy, err error) {
	ctx, span := tracing.Start(ctx, "policy.CreatePolicy")
	defer func() { tracing.End(span, err) }()

	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		p, err := s.store.Create(txCtx, func(id domain.PolicyID) (*models.Policy, error) {
			return models.NewPolicy(id, in, now)
		})
		if err != nil {
			return wrapPolicyErr(err, "create policy")
		}
		policy = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCreated()
	}
	s.emitter.Emit(ctx, audit.EventPolicyCreated,
		"account", caller,
		"subject", "policy:"+policy.ID.String(),
	)
	return policy, nil
}

// UpdatePolicy replaces every field of an existing policy. Flipping Active
// moves it between the active and archived sets.
func (s *Service) UpdatePolicy(ctx context.Context, caller domain.Account, id domain.PolicyID, in models.PolicyInput) (policy *models.Policy, err error) {
	ctx, span := tracing.Start(ctx, "policy.UpdatePolicy")
	defer func() { tracing.End(span, err) }()

	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	transition := "none"
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		p, err := s.store.Execute(txCtx, id,
			func(p *models.Policy) error {
				switch {
				case p.Active && !in.Active:
					transition = "archived"
				case !p.Active && in.Active:
					transition = "activated"
				}
				return nil
			},
			func(p *models.Policy) { p.ApplyUpdate(in, now) },
		)
		if err != nil {
			return wrapPolicyErr(err, "update policy")
		}
		policy = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementUpdated(transition)
	}
	s.emitter.Emit(ctx, audit.EventPolicyUpdated,
		"account", caller,
		"subject", "policy:"+id.String(),
		"reason", transition,
	)
	return policy, nil
}

func (s *Service) GetPolicy(ctx context.Context, id domain.PolicyID) (*models.Policy, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, wrapPolicyErr(err, "load policy")
	}
	return p, nil
}

// GetAllActivePolicies returns active policies in id order.
func (s *Service) GetAllActivePolicies(ctx context.Context) ([]*models.Policy, error) {
	return s.list(ctx, true)
}

// GetAllArchivedPolicies returns archived policies in id order.
func (s *Service) GetAllArchivedPolicies(ctx context.Context) ([]*models.Policy, error) {
	return s.list(ctx, false)
}

func (s *Service) list(ctx context.Context, active bool) ([]*models.Policy, error) {
	policies, err := s.store.ListByActive(ctx, active)
	if err != nil {
		return nil, wrapPolicyErr(err, "list policies")
	}
	return policies, nil
}

// GetPolicyAvailability reports whether the policy is active.
func (s *Service) GetPolicyAvailability(ctx context.Context, id domain.PolicyID) (bool, error) {
	p, err := s.GetPolicy(ctx, id)
	if err != nil {
		return false, err
	}
	return p.Active, nil
}
