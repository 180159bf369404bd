package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
	"greatglobal/pkg/platform/tx"
)

// PostgresPolicyStore persists the catalog in the policies table. Ids come from
// the policy_sequence row so they start at 0 and stay gapless under rollback.
// Methods join the transaction carried in ctx when there is one.
type PostgresPolicyStore struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *PostgresPolicyStore {
	return &PostgresPolicyStore{db: db}
}

type policyRow struct {
	ID             int64         `db:"id"`
	Name           string        `db:"name"`
	Premium        domain.Amount `db:"premium"`
	CoverageAmount domain.Amount `db:"coverage_amount"`
	AgeLimit       int64         `db:"age_limit"`
	Active         bool          `db:"active"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

func (r policyRow) toModel() *models.Policy {
	return &models.Policy{
		ID:             domain.PolicyID(r.ID),
		Name:           r.Name,
		Premium:        r.Premium,
		CoverageAmount: r.CoverageAmount,
		AgeLimit:       uint32(r.AgeLimit),
		Active:         r.Active,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

const selectPolicy = `
	SELECT id, name, premium::text AS premium, coverage_amount::text AS coverage_amount,
	       age_limit, active, created_at, updated_at
	FROM policies`

// Create allocates the next id, builds the policy and inserts it in one
// transaction, so a failed build or insert leaves the sequence untouched.
func (s *PostgresPolicyStore) Create(ctx context.Context, build func(domain.PolicyID) (*models.Policy, error)) (policy *models.Policy, err error) {
	err = tx.NewSQLTx(s.db).RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.nextID(ctx)
		if err != nil {
			return err
		}
		p, err := build(id)
		if err != nil {
			return err
		}
		if p.ID != id {
			return fmt.Errorf("policy built with id %d, want %d: %w", p.ID, id, sentinel.ErrInvalidState)
		}
		if err := s.insert(ctx, p); err != nil {
			return err
		}
		policy = p
		return nil
	})
	return policy, err
}

func (s *PostgresPolicyStore) nextID(ctx context.Context) (domain.PolicyID, error) {
	var id int64
	err := tx.ExecutorFrom(ctx, s.db).QueryRowxContext(ctx,
		`UPDATE policy_sequence SET next_id = next_id + 1 WHERE singleton RETURNING next_id - 1`,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("allocate policy id: %w", err)
	}
	return domain.PolicyID(id), nil
}

func (s *PostgresPolicyStore) insert(ctx context.Context, p *models.Policy) error {
	query := `
		INSERT INTO policies (id, name, premium, coverage_amount, age_limit, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`
	res, err := tx.ExecutorFrom(ctx, s.db).ExecContext(ctx, query,
		int64(p.ID), p.Name, p.Premium, p.CoverageAmount, int64(p.AgeLimit), p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert policy: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert policy: %w", err)
	}
	if n == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *PostgresPolicyStore) FindByID(ctx context.Context, id domain.PolicyID) (*models.Policy, error) {
	return s.find(ctx, selectPolicy+` WHERE id = $1`, id)
}

func (s *PostgresPolicyStore) find(ctx context.Context, query string, id domain.PolicyID) (*models.Policy, error) {
	var row policyRow
	if err := tx.ExecutorFrom(ctx, s.db).GetContext(ctx, &row, query, int64(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get policy: %w", err)
	}
	return row.toModel(), nil
}

// Execute locks the row for the rest of the transaction before validating.
func (s *PostgresPolicyStore) Execute(ctx context.Context, id domain.PolicyID, validate func(*models.Policy) error, mutate func(*models.Policy)) (*models.Policy, error) {
	p, err := s.find(ctx, selectPolicy+` WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	mutate(p)

	query := `
		UPDATE policies
		SET name = $2, premium = $3, coverage_amount = $4, age_limit = $5, active = $6, updated_at = $7
		WHERE id = $1
	`
	_, err = tx.ExecutorFrom(ctx, s.db).ExecContext(ctx, query,
		int64(p.ID), p.Name, p.Premium, p.CoverageAmount, int64(p.AgeLimit), p.Active, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update policy: %w", err)
	}
	return p, nil
}

func (s *PostgresPolicyStore) ListByActive(ctx context.Context, active bool) ([]*models.Policy, error) {
	var rows []policyRow
	if err := tx.ExecutorFrom(ctx, s.db).SelectContext(ctx, &rows, selectPolicy+` WHERE active = $1 ORDER BY id`, active); err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	out := make([]*models.Policy, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}
