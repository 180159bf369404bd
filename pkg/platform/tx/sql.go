package tx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type sqlTxKey struct{}

// From returns the transaction opened by SQLTx.RunInTx, if any.
func From(ctx context.Context) (*sqlx.Tx, bool) {
	t, ok := ctx.Value(sqlTxKey{}).(*sqlx.Tx)
	return t, ok && t != nil
}

// SQLTx runs each command inside one database transaction and exposes it to
// stores through the context (see From).
type SQLTx struct {
	db *sqlx.DB
}

func NewSQLTx(db *sqlx.DB) *SQLTx {
	return &SQLTx{db: db}
}

func (t *SQLTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, nested := From(ctx); nested {
		return fn(ctx)
	}

	sqlTx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = sqlTx.Rollback()
		}
	}()

	if err = fn(context.WithValue(ctx, sqlTxKey{}, sqlTx)); err != nil {
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Executor is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx.
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// ExecutorFrom returns the transaction in ctx, falling back to db.
func ExecutorFrom(ctx context.Context, db *sqlx.DB) Executor {
	if t, ok := From(ctx); ok {
		return t
	}
	return db
}
