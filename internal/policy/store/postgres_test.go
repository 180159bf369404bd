package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
	"greatglobal/pkg/platform/tx"
)

var policyColumns = []string{"id", "name", "premium", "coverage_amount", "age_limit", "active", "created_at", "updated_at"}

func newMockStore(t *testing.T) (*PostgresPolicyStore, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	sdb := sqlx.NewDb(db, "postgres")
	return NewPostgres(sdb), sdb, mock
}

func TestPostgresPolicyStore_Create(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	build := func(id domain.PolicyID) (*models.Policy, error) {
		return models.NewPolicy(id, models.PolicyInput{Name: "Basic", Premium: domain.NewAmount(100)}, now)
	}

	t.Run("allocates and inserts in one transaction", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE policy_sequence SET next_id = next_id + 1`)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(int64(3)))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO policies`)).
			WithArgs(int64(3), "Basic", "100", "0", int64(0), false, now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		p, err := store.Create(context.Background(), build)
		require.NoError(t, err)
		assert.Equal(t, domain.PolicyID(3), p.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed build rolls the sequence back", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		boom := errors.New("invalid policy")
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE policy_sequence SET next_id = next_id + 1`)).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(int64(0)))
		mock.ExpectRollback()

		_, err := store.Create(context.Background(), func(domain.PolicyID) (*models.Policy, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresPolicyStore_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("scans numeric text into amounts", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM policies WHERE id = $1`)).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(policyColumns).
				AddRow(int64(2), "Gold", []byte("100000000000000000000"), []byte("1000"), int64(18), true, now, now))

		p, err := store.FindByID(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Gold", p.Name)
		assert.Equal(t, "100000000000000000000", p.Premium.String())
		assert.Equal(t, uint32(18), p.AgeLimit)
	})

	t.Run("missing row is ErrNotFound", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM policies WHERE id = $1`)).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		_, err := store.FindByID(context.Background(), 7)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestPostgresPolicyStore_CreateConflict(t *testing.T) {
	store, _, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE policy_sequence SET next_id = next_id + 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(int64(0)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO policies`)).
		WithArgs(int64(0), "Basic", "100", "0", int64(0), false, now, now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := store.Create(context.Background(), func(id domain.PolicyID) (*models.Policy, error) {
		return models.NewPolicy(id, models.PolicyInput{Name: "Basic", Premium: domain.NewAmount(100)}, now)
	})
	assert.ErrorIs(t, err, sentinel.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPolicyStore_ExecuteInTransaction(t *testing.T) {
	store, db, mock := newMockStore(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(0)).
		WillReturnRows(sqlmock.NewRows(policyColumns).
			AddRow(int64(0), "Basic", "100", "1000", int64(18), true, now, now))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE policies`)).
		WithArgs(int64(0), "Basic", "100", "1000", int64(18), false, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tx.NewSQLTx(db).RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := store.Execute(ctx, 0,
			func(*models.Policy) error { return nil },
			func(p *models.Policy) {
				p.Active = false
				p.UpdatedAt = now.Add(time.Hour)
			},
		)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
