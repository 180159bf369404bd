package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"greatglobal/pkg/domain"
	audit "greatglobal/pkg/platform/audit"
)

// DB is the subset of *pgxpool.Pool the journal uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store implements audit.Store and audit.Outbox on the ledger_events table.
// published_at is NULL until the relay has forwarded the row to a sink.
type Store struct {
	db DB
}

// New creates a PostgreSQL journal over a pgx pool.
func New(db DB) *Store {
	return &Store{db: db}
}

const selectColumns = `
	id, category, occurred_at, account, actor_id, subject, action,
	amount, reason, request_id
`

// Append inserts the event. Duplicate ids are ignored so replays are idempotent.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	category := event.Category
	if category == "" {
		category = audit.AuditEvent(event.Action).Category()
	}
	occurredAt := event.Timestamp
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	query := `
		INSERT INTO ledger_events (
			id, category, occurred_at, account, actor_id, subject, action,
			amount, reason, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.Exec(ctx, query,
		event.ID,
		string(category),
		occurredAt.UTC(),
		string(event.Account),
		event.ActorID,
		event.Subject,
		event.Action,
		event.Amount,
		event.Reason,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

// ListByAccount returns events about an account in journal order.
func (s *Store) ListByAccount(ctx context.Context, account domain.Account) ([]audit.Event, error) {
	query := `SELECT ` + selectColumns + ` FROM ledger_events WHERE account = $1 ORDER BY seq`
	rows, err := s.db.Query(ctx, query, string(account))
	if err != nil {
		return nil, fmt.Errorf("query ledger events: %w", err)
	}
	return scanEvents(rows)
}

// ListRecent returns the N most recent events, oldest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	query := `
		SELECT * FROM (
			SELECT seq, ` + selectColumns + ` FROM ledger_events ORDER BY seq DESC LIMIT $1
		) recent ORDER BY seq
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent ledger events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var seq int64
		event, err := scanEvent(rows, &seq)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}

// Unpublished returns the oldest events the relay has not yet forwarded.
func (s *Store) Unpublished(ctx context.Context, limit int) ([]audit.Event, error) {
	query := `SELECT ` + selectColumns + ` FROM ledger_events WHERE published_at IS NULL ORDER BY seq LIMIT $1`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query unpublished ledger events: %w", err)
	}
	return scanEvents(rows)
}

// MarkPublished stamps published_at on the given events.
func (s *Store) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	_, err := s.db.Exec(ctx,
		`UPDATE ledger_events SET published_at = NOW() WHERE id = ANY($1::uuid[]) AND published_at IS NULL`,
		raw,
	)
	if err != nil {
		return fmt.Errorf("mark ledger events published: %w", err)
	}
	return nil
}

func scanEvents(rows pgx.Rows) ([]audit.Event, error) {
	defer rows.Close()
	var events []audit.Event
	for rows.Next() {
		event, err := scanEvent(rows, nil)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}

func scanEvent(rows pgx.Rows, seq *int64) (audit.Event, error) {
	var (
		event    audit.Event
		category string
		account  string
	)
	dest := []any{
		&event.ID,
		&category,
		&event.Timestamp,
		&account,
		&event.ActorID,
		&event.Subject,
		&event.Action,
		&event.Amount,
		&event.Reason,
		&event.RequestID,
	}
	if seq != nil {
		dest = append([]any{seq}, dest...)
	}
	if err := rows.Scan(dest...); err != nil {
		return audit.Event{}, fmt.Errorf("scan ledger event: %w", err)
	}
	event.Category = audit.EventCategory(category)
	event.Account = domain.Account(account)
	return event, nil
}
