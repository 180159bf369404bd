// Package service implements the identity registry: user profiles, sessions
// and the admin roster. Other components reach it only through the read-only
// Authorizer methods.
package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	identitymetrics "greatglobal/internal/identity/metrics"
	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	platformtx "greatglobal/pkg/platform/tx"
)

type UserStore interface {
	Create(ctx context.Context, profile *models.UserProfile) error
	FindByAccount(ctx context.Context, account domain.Account) (*models.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	FindByName(ctx context.Context, name string) (*models.UserProfile, error)
	Delete(ctx context.Context, account domain.Account) error
	Execute(ctx context.Context, account domain.Account, validate func(*models.UserProfile) error, mutate func(*models.UserProfile)) (*models.UserProfile, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type AdminStore interface {
	Owner() domain.Account
	Add(ctx context.Context, account domain.Account) (bool, error)
	Remove(ctx context.Context, account domain.Account) error
	Contains(ctx context.Context, account domain.Account) (bool, error)
	Snapshot(ctx context.Context) (models.AdminSet, error)
}

type SessionStore interface {
	Get(ctx context.Context, account domain.Account) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, account domain.Account) error
}

// StoreTx serializes identity commands.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher audit.Publisher
	metrics        *identitymetrics.Metrics
	tx             StoreTx
	minAge         uint32
	bcryptCost     int
}

type Option func(*serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(c *serviceConfig) {
		c.auditPublisher = publisher
	}
}

func WithMetrics(m *identitymetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

// WithMinAge overrides the minimum registration age.
func WithMinAge(age uint32) Option {
	return func(c *serviceConfig) {
		c.minAge = age
	}
}

// WithBcryptCost sets the password hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(c *serviceConfig) {
		c.bcryptCost = cost
	}
}

// Service is the identity registry.
type Service struct {
	users      UserStore
	admins     AdminStore
	sessions   SessionStore
	logger     *slog.Logger
	emitter    *audit.Emitter
	metrics    *identitymetrics.Metrics
	tx         StoreTx
	minAge     uint32
	bcryptCost int
}

func New(users UserStore, admins AdminStore, sessions SessionStore, opts ...Option) *Service {
	cfg := &serviceConfig{minAge: models.DefaultMinAge, bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	tx := cfg.tx
	if tx == nil {
		tx = platformtx.NewMemoryTx(0)
	}
	return &Service{
		users:      users,
		admins:     admins,
		sessions:   sessions,
		logger:     cfg.logger,
		emitter:    audit.NewEmitter(cfg.logger, cfg.auditPublisher),
		metrics:    cfg.metrics,
		tx:         tx,
		minAge:     cfg.minAge,
		bcryptCost: cfg.bcryptCost,
	}
}

func requireCaller(caller domain.Account) error {
	if caller.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "caller account is required")
	}
	return nil
}

// invalidCredentials is returned for every sign-in failure so callers cannot
// probe which identifiers exist.
func invalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
}

func wrapUserErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
}

// resolveIdentifier looks the identifier up as an email first and then as a
// name. Names are not unique, so the caller's own profile wins a name match
// over the earliest registrant.
func (s *Service) resolveIdentifier(ctx context.Context, caller domain.Account, identifier string) (*models.UserProfile, error) {
	p, err := s.users.FindByEmail(ctx, identifier)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, err
	}
	own, err := s.users.FindByAccount(ctx, caller)
	switch {
	case err == nil && own.HasName(identifier):
		return own, nil
	case err != nil && !errors.Is(err, sentinel.ErrNotFound):
		return nil, err
	}
	return s.users.FindByName(ctx, identifier)
}

// currentRole returns RoleNone when the account has no session.
func (s *Service) currentRole(ctx context.Context, account domain.Account) (domain.Role, error) {
	sess, err := s.sessions.Get(ctx, account)
	if errors.Is(err, sentinel.ErrNotFound) {
		return domain.RoleNone, nil
	}
	if err != nil {
		return domain.RoleNone, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return sess.Role, nil
}

func (s *Service) hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, dErrors.New(dErrors.CodeValidation, "password must be at most 72 bytes")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	return hash, nil
}

func (s *Service) incrementSignIn(role domain.Role, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementSignIn(role.String(), outcome)
	}
}

func (s *Service) incrementAdminChange(kind string) {
	if s.metrics != nil {
		s.metrics.IncrementAdminChange(kind)
	}
}
