package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/sentinel"
)

func TestInMemoryAdminStore(t *testing.T) {
	ctx := context.Background()
	owner := domain.MustAccount("0x0000000000000000000000000000000000000001")
	admin := domain.MustAccount("0x0000000000000000000000000000000000000002")
	store := NewInMemoryAdminStore(owner)

	ok, err := store.Contains(ctx, owner)
	require.NoError(t, err)
	assert.True(t, ok, "owner is seeded")

	added, err := store.Add(ctx, admin)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add(ctx, admin)
	require.NoError(t, err)
	assert.False(t, added, "second add is a no-op")

	assert.ErrorIs(t, store.Remove(ctx, owner), sentinel.ErrInvalidState)
	require.NoError(t, store.Remove(ctx, admin))
	assert.ErrorIs(t, store.Remove(ctx, admin), sentinel.ErrNotFound)

	set, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, owner, set.Owner)
	assert.Empty(t, set.Admins)
}
