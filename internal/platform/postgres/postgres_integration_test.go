//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"greatglobal/pkg/testutil/containers"
)

func TestMigrateIsIdempotent(t *testing.T) {
	pg := containers.GetManager().GetPostgres(t)

	require.NoError(t, Migrate(pg.DB))
	require.NoError(t, Migrate(pg.DB))

	var next int64
	require.NoError(t, pg.DB.GetContext(context.Background(), &next, `SELECT next_id FROM policy_sequence`))
	require.GreaterOrEqual(t, next, int64(0))

	pool, err := OpenPool(context.Background(), pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	var n int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT count(*) FROM ledger_events`).Scan(&n))
}
