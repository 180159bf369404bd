// Package sqlite provides a single-node SQLite event journal.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"greatglobal/pkg/domain"
	audit "greatglobal/pkg/platform/audit"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_events (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT    NOT NULL UNIQUE,
	category     TEXT    NOT NULL,
	occurred_at  INTEGER NOT NULL,
	account      TEXT    NOT NULL DEFAULT '',
	actor_id     TEXT    NOT NULL DEFAULT '',
	subject      TEXT    NOT NULL DEFAULT '',
	action       TEXT    NOT NULL,
	amount       TEXT    NOT NULL DEFAULT '',
	reason       TEXT    NOT NULL DEFAULT '',
	request_id   TEXT    NOT NULL DEFAULT '',
	published_at INTEGER
);
CREATE INDEX IF NOT EXISTS idx_ledger_events_account ON ledger_events (account);
CREATE INDEX IF NOT EXISTS idx_ledger_events_unpublished ON ledger_events (published_at) WHERE published_at IS NULL;
`

// Store persists the journal in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the journal database at path and ensures the schema exists.
// Use ":memory:" for an ephemeral journal.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite journal: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps ":memory:" databases shared.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite journal: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

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
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO ledger_events (
		   id, category, occurred_at, account, actor_id, subject, action,
		   amount, reason, request_id
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		event.ID.String(),
		string(category),
		toMillis(occurredAt),
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

const selectColumns = `id, category, occurred_at, account, actor_id, subject, action, amount, reason, request_id`

func (s *Store) ListByAccount(ctx context.Context, account domain.Account) ([]audit.Event, error) {
	return s.query(ctx,
		`SELECT `+selectColumns+` FROM ledger_events WHERE account = ? ORDER BY seq`,
		string(account),
	)
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	return s.query(ctx,
		`SELECT `+selectColumns+` FROM (
		   SELECT * FROM ledger_events ORDER BY seq DESC LIMIT ?
		 ) ORDER BY seq`,
		limit,
	)
}

func (s *Store) Unpublished(ctx context.Context, limit int) ([]audit.Event, error) {
	return s.query(ctx,
		`SELECT `+selectColumns+` FROM ledger_events WHERE published_at IS NULL ORDER BY seq LIMIT ?`,
		limit,
	)
}

func (s *Store) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin mark published: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE ledger_events SET published_at = ? WHERE id = ? AND published_at IS NULL`)
	if err != nil {
		return fmt.Errorf("prepare mark published: %w", err)
	}
	defer stmt.Close()

	now := toMillis(time.Now())
	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, now, id.String()); err != nil {
			return fmt.Errorf("mark ledger event %s published: %w", id, err)
		}
	}
	return tx.Commit()
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]audit.Event, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			event      audit.Event
			id         string
			category   string
			occurredAt int64
			account    string
		)
		if err := rows.Scan(&id, &category, &occurredAt, &account, &event.ActorID,
			&event.Subject, &event.Action, &event.Amount, &event.Reason, &event.RequestID); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse ledger event id: %w", err)
		}
		event.ID = parsed
		event.Category = audit.EventCategory(category)
		event.Timestamp = fromMillis(occurredAt)
		event.Account = domain.Account(account)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}
