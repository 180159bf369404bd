//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"greatglobal/pkg/testutil/containers"
)

func TestRedisRosterSuite(t *testing.T) {
	rc := containers.GetManager().GetRedis(t)
	suite.Run(t, &RosterSuite{newRoster: func() roster {
		ctx := context.Background()
		_ = rc.FlushAll(ctx)
		r, err := NewRedisRoster(ctx, rc.Client, owner)
		require.NoError(t, err)
		return r
	}})
}
