package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	identitymodels "greatglobal/internal/identity/models"
	identity "greatglobal/internal/identity/service"
	adminstore "greatglobal/internal/identity/store/admin"
	sessionstore "greatglobal/internal/identity/store/session"
	userstore "greatglobal/internal/identity/store/user"
	"greatglobal/internal/packages/models"
	"greatglobal/internal/packages/service/mocks"
	"greatglobal/internal/packages/store"
	policymodels "greatglobal/internal/policy/models"
	policy "greatglobal/internal/policy/service"
	policystore "greatglobal/internal/policy/store"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/audit/publisher"
	auditmemory "greatglobal/pkg/platform/audit/store/memory"
	"greatglobal/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

var (
	owner = domain.MustAccount("0x0000000000000000000000000000000000000001")
	alice = domain.MustAccount("0x00000000000000000000000000000000000000a1")
	bob   = domain.MustAccount("0x00000000000000000000000000000000000000b2")
)

type PackageServiceSuite struct {
	suite.Suite
	ctx      context.Context
	identity *identity.Service
	svc      *Service
	journal  *auditmemory.InMemoryStore
	basic    domain.PolicyID
	legacy   domain.PolicyID
}

func TestPackageServiceSuite(t *testing.T) {
	suite.Run(t, new(PackageServiceSuite))
}

func (s *PackageServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC))
	s.journal = auditmemory.NewInMemoryStore()
	s.identity = identity.New(
		userstore.NewInMemoryUserStore(),
		adminstore.NewInMemoryAdminStore(owner),
		sessionstore.NewInMemorySessionStore(),
		identity.WithBcryptCost(bcrypt.MinCost),
	)
	policies := policy.New(policystore.NewInMemoryPolicyStore(), s.identity)
	s.svc = New(store.NewInMemoryPackageStore(), s.identity, policies,
		WithAuditPublisher(publisher.NewPublisher(s.journal)))

	for account, email := range map[domain.Account]string{alice: "a@b.com", bob: "bob@b.com"} {
		_, err := s.identity.Register(s.ctx, account, identitymodels.RegisterRequest{
			Name: email, Email: email, Age: 30, Password: "pw",
		})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.identity.AdminSignIn(s.ctx, owner, owner))

	basic, err := policies.CreatePolicy(s.ctx, owner, policymodels.PolicyInput{
		Name: "Basic", Premium: domain.NewAmount(100), CoverageAmount: domain.NewAmount(1000), AgeLimit: 18, Active: true,
	})
	s.Require().NoError(err)
	legacy, err := policies.CreatePolicy(s.ctx, owner, policymodels.PolicyInput{Name: "Legacy"})
	s.Require().NoError(err)
	s.basic, s.legacy = basic.ID, legacy.ID
}

func (s *PackageServiceSuite) TestRequestApproveFlow() {
	_, err := s.svc.SubscribeToPackage(s.ctx, alice, s.basic)
	s.Require().NoError(err)

	view, err := s.svc.ViewPackages(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal([]models.Entry{{UserEmail: "a@b.com", PackageID: s.basic}}, view.Pending)
	s.Empty(view.Approved)

	_, err = s.svc.ApproveSubscription(s.ctx, owner, "A@B.com", s.basic)
	s.Require().NoError(err)

	view, err = s.svc.ViewPackages(s.ctx, alice)
	s.Require().NoError(err)
	s.Len(view.Approved, 1)
	s.Empty(view.Pending)

	events, err := s.journal.ListByAccount(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventPackageApproved), events[1].Action)
	s.Equal(owner.String(), events[1].ActorID)
}

func (s *PackageServiceSuite) TestSubscribeRules() {
	s.Run("duplicate pending request", func() {
		_, err := s.svc.SubscribeToPackage(s.ctx, alice, s.basic)
		s.Require().NoError(err)
		_, err = s.svc.SubscribeToPackage(s.ctx, alice, s.basic)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("inactive package", func() {
		_, err := s.svc.SubscribeToPackage(s.ctx, alice, s.legacy)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("unknown package", func() {
		_, err := s.svc.SubscribeToPackage(s.ctx, alice, 77)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("signed-out user", func() {
		s.Require().NoError(s.identity.LogoutUser(s.ctx, bob))
		_, err := s.svc.SubscribeToPackage(s.ctx, bob, s.basic)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *PackageServiceSuite) TestApproveRequiresPendingRecord() {
	_, err := s.svc.ApproveSubscription(s.ctx, owner, "a@b.com", s.basic)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.svc.ApproveSubscription(s.ctx, alice, "a@b.com", s.basic)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *PackageServiceSuite) TestCancelAndReject() {
	_, err := s.svc.SubscribeToPackage(s.ctx, alice, s.basic)
	s.Require().NoError(err)
	_, err = s.svc.SubscribeToPackage(s.ctx, bob, s.basic)
	s.Require().NoError(err)

	_, err = s.svc.CancelSubscription(s.ctx, alice, s.basic)
	s.Require().NoError(err)
	_, err = s.svc.RejectSubscription(s.ctx, owner, "bob@b.com", s.basic)
	s.Require().NoError(err)

	s.Run("terminal", func() {
		_, err := s.svc.ApproveSubscription(s.ctx, owner, "a@b.com", s.basic)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("admin view covers every user", func() {
		all, err := s.svc.ViewAllSubscriptions(s.ctx, owner)
		s.Require().NoError(err)
		s.Len(all.Cancelled, 2)
		s.Empty(all.Pending)
	})

	s.Run("admin view is admin only", func() {
		_, err := s.svc.ViewAllSubscriptions(s.ctx, alice)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("a cancelled request can be filed again", func() {
		_, err := s.svc.SubscribeToPackage(s.ctx, alice, s.basic)
		s.NoError(err)
	})
}

func TestStoreFailures(t *testing.T) {
	boom := errors.New("disk full")
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	auth := mocks.NewMockAuthorizer(ctrl)
	svc := New(st, auth, mocks.NewMockPolicyLookup(ctrl))

	auth.EXPECT().RequireSession(gomock.Any(), owner, domain.RoleAdmin).Return(nil)
	st.EXPECT().ListAll(gomock.Any()).Return(nil, boom)

	_, err := svc.ViewAllSubscriptions(context.Background(), owner)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.ErrorIs(t, err, boom)
}
