package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"greatglobal/internal/claims/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	"greatglobal/pkg/platform/sentinel"
)

var (
	alice = domain.MustAccount("0x00000000000000000000000000000000000000a1")
	bob   = domain.MustAccount("0x00000000000000000000000000000000000000b2")
)

type ClaimStoreSuite struct {
	suite.Suite
	claims *InMemoryClaimStore
	pool   *InMemoryPoolStore
	ctx    context.Context
}

func TestClaimStoreSuite(t *testing.T) {
	suite.Run(t, new(ClaimStoreSuite))
}

func (s *ClaimStoreSuite) SetupTest() {
	s.claims = NewInMemoryClaimStore()
	s.pool = NewInMemoryPoolStore()
	s.ctx = context.Background()
}

func (s *ClaimStoreSuite) add(account domain.Account, amount int64) *models.Claim {
	id, err := s.claims.NextID(s.ctx, account)
	s.Require().NoError(err)
	c, err := models.NewClaim(id, account, domain.NewAmount(amount), time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.claims.Create(s.ctx, c))
	return c
}

func (s *ClaimStoreSuite) TestPerAccountSequences() {
	a0 := s.add(alice, 10)
	b0 := s.add(bob, 20)
	a1 := s.add(alice, 30)

	s.Equal(domain.ClaimID(0), a0.ID)
	s.Equal(domain.ClaimID(0), b0.ID)
	s.Equal(domain.ClaimID(1), a1.ID)

	s.ErrorIs(s.claims.Create(s.ctx, a0), sentinel.ErrConflict)
}

func (s *ClaimStoreSuite) TestPendingViews() {
	s.add(alice, 10)
	s.add(bob, 20)
	s.add(alice, 30)

	_, err := s.claims.Execute(s.ctx, alice, 0,
		func(c *models.Claim) error { return c.CanDecide() },
		func(c *models.Claim) { c.ApplyDecision(true, bob, time.Now()) },
	)
	s.Require().NoError(err)

	pending, err := s.claims.ListPending(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(domain.ClaimID(1), pending[0].ID)

	all, err := s.claims.ListAllPending(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(alice, all[0].Account)
	s.Equal(bob, all[1].Account)
}

func (s *ClaimStoreSuite) TestExecuteValidationKeepsState() {
	s.add(alice, 10)
	_, err := s.claims.Execute(s.ctx, alice, 0,
		func(c *models.Claim) error { return c.CanDisburse() },
		func(c *models.Claim) { c.ApplyPayout(alice, time.Now()) },
	)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

	c, err := s.claims.FindByID(s.ctx, alice, 0)
	s.Require().NoError(err)
	s.False(c.IsPaid())

	_, err = s.claims.FindByID(s.ctx, bob, 3)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ClaimStoreSuite) TestPool() {
	_, err := s.pool.Execute(s.ctx,
		func(*models.FundingPool) error { return nil },
		func(p *models.FundingPool) { p.Deposit(domain.NewAmount(100)) },
	)
	s.Require().NoError(err)

	_, err = s.pool.Execute(s.ctx,
		func(p *models.FundingPool) error { return p.CanPay(domain.NewAmount(500)) },
		func(p *models.FundingPool) { p.ApplyPayout(domain.NewAmount(500)) },
	)
	s.True(dErrors.HasCode(err, dErrors.CodeInsufficientFunds))

	pool, err := s.pool.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal("100", pool.Balance.String())
}
