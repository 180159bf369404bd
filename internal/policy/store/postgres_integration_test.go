//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"greatglobal/internal/platform/postgres"
	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/tx"
	"greatglobal/pkg/testutil/containers"
)

type PostgresPolicyStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresPolicyStore
	tx    *tx.SQLTx
	ctx   context.Context
}

func TestPostgresPolicyStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresPolicyStoreSuite))
}

func (s *PostgresPolicyStoreSuite) SetupSuite() {
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.Require().NoError(postgres.Migrate(s.pg.DB))
	s.store = NewPostgres(s.pg.DB)
	s.tx = tx.NewSQLTx(s.pg.DB)
	s.ctx = context.Background()
}

func (s *PostgresPolicyStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(s.ctx, "policies"))
	_, err := s.pg.DB.ExecContext(s.ctx, `UPDATE policy_sequence SET next_id = 0`)
	s.Require().NoError(err)
}

func (s *PostgresPolicyStoreSuite) create(in models.PolicyInput) *models.Policy {
	created, err := s.store.Create(s.ctx, func(id domain.PolicyID) (*models.Policy, error) {
		return models.NewPolicy(id, in, time.Now().UTC().Truncate(time.Microsecond))
	})
	s.Require().NoError(err)
	return created
}

func (s *PostgresPolicyStoreSuite) TestRoundTripLargeAmounts() {
	premium, err := domain.FromDisplay("12345.5")
	s.Require().NoError(err)
	p := s.create(models.PolicyInput{Name: "Basic", Premium: premium, CoverageAmount: domain.NewAmount(1000), AgeLimit: 18, Active: true})
	s.Equal(domain.PolicyID(0), p.ID)

	found, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(found.Premium.Equal(premium))
	s.Equal(uint32(18), found.AgeLimit)
}

func (s *PostgresPolicyStoreSuite) TestRolledBackCreateDoesNotConsumeID() {
	boom := errors.New("abort")
	_, err := s.store.Create(s.ctx, func(domain.PolicyID) (*models.Policy, error) { return nil, boom })
	s.ErrorIs(err, boom)

	err = s.tx.RunInTx(s.ctx, func(ctx context.Context) error {
		if _, err := s.store.Create(ctx, func(id domain.PolicyID) (*models.Policy, error) {
			return models.NewPolicy(id, models.PolicyInput{Name: "Discarded"}, time.Now())
		}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	p := s.create(models.PolicyInput{Name: "After", Active: false})
	s.Equal(domain.PolicyID(0), p.ID)

	archived, err := s.store.ListByActive(s.ctx, false)
	s.Require().NoError(err)
	s.Len(archived, 1)
}
