// Package service implements subscription billing: prepaid customer balances,
// admin-issued insurance subscriptions, manual and scheduled premium payments
// and the treasury those deposits back.
package service

import (
	"context"
	"errors"
	"log/slog"

	billingmetrics "greatglobal/internal/billing/metrics"
	"greatglobal/internal/billing/models"
	policy "greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	platformtx "greatglobal/pkg/platform/tx"
)

const defaultAutoPayWorkers = 4

type CustomerStore interface {
	Create(ctx context.Context, c *models.CustomerAccount) error
	FindByAccount(ctx context.Context, account domain.Account) (*models.CustomerAccount, error)
	Execute(ctx context.Context, account domain.Account, validate func(*models.CustomerAccount) error, mutate func(*models.CustomerAccount)) (*models.CustomerAccount, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type TreasuryStore interface {
	Get(ctx context.Context) (models.Treasury, error)
	Execute(ctx context.Context, validate func(*models.Treasury) error, mutate func(*models.Treasury)) (models.Treasury, error)
}

// Roster is the billing admin list, separate from identity admins.
type Roster interface {
	Add(ctx context.Context, account domain.Account) (bool, error)
	Contains(ctx context.Context, account domain.Account) (bool, error)
	List(ctx context.Context) ([]domain.Account, error)
}

type Authorizer interface {
	RequireSession(ctx context.Context, account domain.Account, role domain.Role) error
}

// PolicyLookup resolves catalog policies for subscription approval.
type PolicyLookup interface {
	GetPolicy(ctx context.Context, id domain.PolicyID) (*policy.Policy, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        *billingmetrics.Metrics
	tx             StoreTx
	interval       models.Interval
	workers        int
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) { c.logger = logger }
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(c *serviceConfig) { c.auditPublisher = publisher }
}

func WithMetrics(m *billingmetrics.Metrics) Option {
	return func(c *serviceConfig) { c.metrics = m }
}

func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) { c.tx = tx }
}

// WithInterval sets the billing period. Zero keeps one calendar month.
func WithInterval(interval models.Interval) Option {
	return func(c *serviceConfig) { c.interval = interval }
}

// WithAutoPayWorkers bounds how many customers one sweep charges concurrently.
func WithAutoPayWorkers(n int) Option {
	return func(c *serviceConfig) { c.workers = n }
}

type Service struct {
	customers CustomerStore
	treasury  TreasuryStore
	roster    Roster
	auth      Authorizer
	policies  PolicyLookup
	owner     domain.Account
	interval  models.Interval
	workers   int
	logger    *slog.Logger
	emitter   *audit.Emitter
	metrics   *billingmetrics.Metrics
	tx        StoreTx
}

// New builds the billing service. owner is the only account allowed to grow
// the roster; the roster store is expected to be seeded with it.
func New(customers CustomerStore, treasury TreasuryStore, roster Roster, auth Authorizer, policies PolicyLookup, owner domain.Account, opts ...Option) *Service {
	cfg := &serviceConfig{workers: defaultAutoPayWorkers}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tx == nil {
		cfg.tx = platformtx.NewMemoryTx(0)
	}
	if cfg.workers <= 0 {
		cfg.workers = defaultAutoPayWorkers
	}
	return &Service{
		customers: customers,
		treasury:  treasury,
		roster:    roster,
		auth:      auth,
		policies:  policies,
		owner:     owner,
		interval:  cfg.interval,
		workers:   cfg.workers,
		logger:    cfg.logger,
		emitter:   audit.NewEmitter(cfg.logger, cfg.auditPublisher),
		metrics:   cfg.metrics,
		tx:        cfg.tx,
	}
}

func wrapCustomerErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "customer not found")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
}

func requireCaller(caller domain.Account) error {
	if caller.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "caller account is required")
	}
	return nil
}

func requirePositive(amount domain.Amount) error {
	if !amount.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "amount must be greater than zero")
	}
	return nil
}

func (s *Service) requireBillingAdmin(ctx context.Context, caller domain.Account) error {
	ok, err := s.roster.Contains(ctx, caller)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check billing admins")
	}
	if !ok {
		return dErrors.New(dErrors.CodeForbidden, "billing admin required")
	}
	return nil
}

// requireManager accepts a billing admin or an identity admin session.
func (s *Service) requireManager(ctx context.Context, caller domain.Account) error {
	err := s.requireBillingAdmin(ctx, caller)
	if err == nil || !dErrors.HasCode(err, dErrors.CodeForbidden) {
		return err
	}
	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		if dErrors.HasCode(err, dErrors.CodeForbidden) {
			return dErrors.New(dErrors.CodeForbidden, "billing admin or admin session required")
		}
		return err
	}
	return nil
}

// ownSubscription loads the caller's subscription for a read.
func (s *Service) ownSubscription(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (models.Subscription, error) {
	if err := requireCaller(caller); err != nil {
		return models.Subscription{}, err
	}
	c, err := s.customers.FindByAccount(ctx, caller)
	if err != nil {
		return models.Subscription{}, wrapCustomerErr(err, "load customer")
	}
	sub, ok := c.Subscription(id)
	if !ok {
		return models.Subscription{}, dErrors.New(dErrors.CodeForbidden, "subscription does not belong to caller")
	}
	return *sub, nil
}
