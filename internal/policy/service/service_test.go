package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"greatglobal/internal/policy/models"
	"greatglobal/internal/policy/service/mocks"
	"greatglobal/internal/policy/store"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	"greatglobal/pkg/platform/audit/publisher"
	auditmemory "greatglobal/pkg/platform/audit/store/memory"
	"greatglobal/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

var (
	admin = domain.MustAccount("0x0000000000000000000000000000000000000001")
	user  = domain.MustAccount("0x00000000000000000000000000000000000000a1")
)

type PolicyServiceSuite struct {
	suite.Suite
	ctx     context.Context
	auth    *mocks.MockAuthorizer
	svc     *Service
	journal *auditmemory.InMemoryStore
}

func TestPolicyServiceSuite(t *testing.T) {
	suite.Run(t, new(PolicyServiceSuite))
}

func (s *PolicyServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.auth = mocks.NewMockAuthorizer(ctrl)
	s.auth.EXPECT().RequireSession(gomock.Any(), admin, domain.RoleAdmin).Return(nil).AnyTimes()
	s.auth.EXPECT().RequireSession(gomock.Any(), user, domain.RoleAdmin).
		Return(dErrors.New(dErrors.CodeForbidden, "admin session required")).AnyTimes()

	s.journal = auditmemory.NewInMemoryStore()
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	s.svc = New(store.NewInMemoryPolicyStore(), s.auth, WithAuditPublisher(publisher.NewPublisher(s.journal)))
}

func basic(active bool) models.PolicyInput {
	return models.PolicyInput{
		Name:           "Basic",
		Premium:        domain.NewAmount(100),
		CoverageAmount: domain.NewAmount(1000),
		AgeLimit:       18,
		Active:         active,
	}
}

func ids(policies []*models.Policy) []domain.PolicyID {
	out := make([]domain.PolicyID, 0, len(policies))
	for _, p := range policies {
		out = append(out, p.ID)
	}
	return out
}

func (s *PolicyServiceSuite) TestCreatePolicy() {
	s.Run("admin creates sequential ids from zero", func() {
		first, err := s.svc.CreatePolicy(s.ctx, admin, basic(true))
		s.Require().NoError(err)
		second, err := s.svc.CreatePolicy(s.ctx, admin, basic(false))
		s.Require().NoError(err)
		s.Equal(domain.PolicyID(0), first.ID)
		s.Equal(domain.PolicyID(1), second.ID)

		active, err := s.svc.GetAllActivePolicies(s.ctx)
		s.Require().NoError(err)
		s.Equal([]domain.PolicyID{0}, ids(active))
		archived, err := s.svc.GetAllArchivedPolicies(s.ctx)
		s.Require().NoError(err)
		s.Equal([]domain.PolicyID{1}, ids(archived))

		events, err := s.journal.ListByAccount(s.ctx, admin)
		s.Require().NoError(err)
		s.Len(events, 2)
		s.Equal("policy:1", events[1].Subject)
	})

	s.Run("non-admin is forbidden", func() {
		_, err := s.svc.CreatePolicy(s.ctx, user, basic(true))
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("empty name is a validation error", func() {
		in := basic(true)
		in.Name = ""
		_, err := s.svc.CreatePolicy(s.ctx, admin, in)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *PolicyServiceSuite) TestUpdatePolicy() {
	p, err := s.svc.CreatePolicy(s.ctx, admin, basic(true))
	s.Require().NoError(err)

	s.Run("full replace archives the policy", func() {
		updated, err := s.svc.UpdatePolicy(s.ctx, admin, p.ID, models.PolicyInput{Name: "Renamed", Active: false})
		s.Require().NoError(err)
		s.Equal("Renamed", updated.Name)
		s.True(updated.Premium.IsZero())

		available, err := s.svc.GetPolicyAvailability(s.ctx, p.ID)
		s.Require().NoError(err)
		s.False(available)

		archived, err := s.svc.GetAllArchivedPolicies(s.ctx)
		s.Require().NoError(err)
		s.Equal([]domain.PolicyID{p.ID}, ids(archived))
	})

	s.Run("reactivation moves it back", func() {
		_, err := s.svc.UpdatePolicy(s.ctx, admin, p.ID, basic(true))
		s.Require().NoError(err)
		active, err := s.svc.GetAllActivePolicies(s.ctx)
		s.Require().NoError(err)
		s.Equal([]domain.PolicyID{p.ID}, ids(active))
	})

	s.Run("unknown id is not found", func() {
		_, err := s.svc.UpdatePolicy(s.ctx, admin, 42, basic(true))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("non-admin is forbidden and nothing changes", func() {
		_, err := s.svc.UpdatePolicy(s.ctx, user, p.ID, models.PolicyInput{Name: "Hijack"})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		got, err := s.svc.GetPolicy(s.ctx, p.ID)
		s.Require().NoError(err)
		s.Equal("Basic", got.Name)
	})
}

func (s *PolicyServiceSuite) TestQueriesOnUnknownIDs() {
	_, err := s.svc.GetPolicy(s.ctx, 7)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	_, err = s.svc.GetPolicyAvailability(s.ctx, 7)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
