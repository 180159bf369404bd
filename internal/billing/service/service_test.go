package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"greatglobal/internal/billing/models"
	"greatglobal/internal/billing/store"
	identitymodels "greatglobal/internal/identity/models"
	identity "greatglobal/internal/identity/service"
	adminstore "greatglobal/internal/identity/store/admin"
	sessionstore "greatglobal/internal/identity/store/session"
	userstore "greatglobal/internal/identity/store/user"
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

var (
	owner = domain.MustAccount("0x0000000000000000000000000000000000000001")
	alice = domain.MustAccount("0x00000000000000000000000000000000000000a1")
	bob   = domain.MustAccount("0x00000000000000000000000000000000000000b2")
	carol = domain.MustAccount("0x00000000000000000000000000000000000000c3")
)

type BillingServiceSuite struct {
	suite.Suite
	now      time.Time
	ctx      context.Context
	identity *identity.Service
	policies *policy.Service
	svc      *Service
	journal  *auditmemory.InMemoryStore

	activePolicy   domain.PolicyID
	archivedPolicy domain.PolicyID
}

func TestBillingServiceSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.journal = auditmemory.NewInMemoryStore()
	pub := publisher.NewPublisher(s.journal)

	s.identity = identity.New(
		userstore.NewInMemoryUserStore(),
		adminstore.NewInMemoryAdminStore(owner),
		sessionstore.NewInMemorySessionStore(),
		identity.WithBcryptCost(bcrypt.MinCost),
	)
	s.policies = policy.New(policystore.NewInMemoryPolicyStore(), s.identity)
	s.svc = New(
		store.NewInMemoryCustomerStore(),
		store.NewInMemoryTreasuryStore(),
		store.NewInMemoryRoster(owner),
		s.identity,
		s.policies,
		owner,
		WithAuditPublisher(pub),
	)

	_, err := s.identity.Register(s.ctx, alice, identitymodels.RegisterRequest{
		Name: "Alice", Email: "a@b.com", Age: 25, Password: "pw",
	})
	s.Require().NoError(err)
	s.Require().NoError(s.identity.AdminSignIn(s.ctx, owner, owner))

	active, err := s.policies.CreatePolicy(s.ctx, owner, policymodels.PolicyInput{
		Name: "Basic", Premium: amt(100), CoverageAmount: amt(1000), AgeLimit: 18, Active: true,
	})
	s.Require().NoError(err)
	archived, err := s.policies.CreatePolicy(s.ctx, owner, policymodels.PolicyInput{
		Name: "Legacy", Premium: amt(10), CoverageAmount: amt(100),
	})
	s.Require().NoError(err)
	s.activePolicy, s.archivedPolicy = active.ID, archived.ID
}

func amt(v int64) domain.Amount { return domain.NewAmount(v) }

func (s *BillingServiceSuite) customerWithSubscription(account domain.Account, premium int64, payDate time.Time) models.Subscription {
	_, err := s.svc.RegisterCustomer(s.ctx, account)
	s.Require().NoError(err)
	sub, err := s.svc.ApproveInsurance(s.ctx, owner, account, s.activePolicy, amt(premium), payDate)
	s.Require().NoError(err)
	return sub
}

func (s *BillingServiceSuite) events(account domain.Account, action audit.AuditEvent) int {
	all, err := s.journal.ListByAccount(s.ctx, account)
	s.Require().NoError(err)
	n := 0
	for _, e := range all {
		if e.Action == string(action) {
			n++
		}
	}
	return n
}

func (s *BillingServiceSuite) TestRegisterCustomerIsIdempotent() {
	first, err := s.svc.RegisterCustomer(s.ctx, alice)
	s.Require().NoError(err)
	_, err = s.svc.AddBalance(s.ctx, alice, amt(5), amt(5))
	s.Require().NoError(err)

	again, err := s.svc.RegisterCustomer(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(first.CreatedAt, again.CreatedAt)
	s.Equal("5", again.Balance.String())
	s.Equal(1, s.events(alice, audit.EventCustomerRegistered))
}

func (s *BillingServiceSuite) TestAddBalance() {
	s.Run("unknown customer", func() {
		_, err := s.svc.AddBalance(s.ctx, bob, amt(1), amt(1))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	_, err := s.svc.RegisterCustomer(s.ctx, alice)
	s.Require().NoError(err)

	s.Run("value must cover the amount", func() {
		_, err := s.svc.AddBalance(s.ctx, alice, amt(10), amt(9))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("treasury holds the full value sent", func() {
		c, err := s.svc.AddBalance(s.ctx, alice, amt(10), amt(12))
		s.Require().NoError(err)
		s.Equal("10", c.Balance.String())

		balance, err := s.svc.GetCustomerBalance(s.ctx, alice)
		s.Require().NoError(err)
		s.Equal("10", balance.String())

		t, err := s.svc.ViewTotalMoney(s.ctx, owner)
		s.Require().NoError(err)
		s.Equal("12", t.Held.String())
	})
}

func (s *BillingServiceSuite) TestApproveInsurance() {
	_, err := s.svc.RegisterCustomer(s.ctx, alice)
	s.Require().NoError(err)

	s.Run("requires an admin session", func() {
		_, err := s.svc.ApproveInsurance(s.ctx, alice, alice, s.activePolicy, amt(100), s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("unknown policy", func() {
		_, err := s.svc.ApproveInsurance(s.ctx, owner, alice, 99, amt(100), s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("archived policy", func() {
		_, err := s.svc.ApproveInsurance(s.ctx, owner, alice, s.archivedPolicy, amt(100), s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("unknown customer", func() {
		_, err := s.svc.ApproveInsurance(s.ctx, owner, bob, s.activePolicy, amt(100), s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("pay date is readable by managers", func() {
		sub, err := s.svc.ApproveInsurance(s.ctx, owner, alice, s.activePolicy, amt(100), s.now)
		s.Require().NoError(err)
		s.False(sub.AutoPay)

		payDate, err := s.svc.ChkInsurancePayDate(s.ctx, owner, alice, sub.ID)
		s.Require().NoError(err)
		s.Equal(s.now, payDate)
	})
}

func (s *BillingServiceSuite) TestChkInsurancePayDateAuthorization() {
	sub := s.customerWithSubscription(alice, 100, s.now)

	s.Run("plain user is forbidden", func() {
		_, err := s.svc.ChkInsurancePayDate(s.ctx, alice, alice, sub.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("identity admin session without billing membership", func() {
		s.Require().NoError(s.identity.AssignAdmin(s.ctx, owner, bob))
		s.Require().NoError(s.identity.AdminSignIn(s.ctx, bob, bob))
		_, err := s.svc.ChkInsurancePayDate(s.ctx, bob, alice, sub.ID)
		s.NoError(err)
	})

	s.Run("billing admin without a session", func() {
		s.Require().NoError(s.svc.AddAdmin(s.ctx, owner, carol))
		_, err := s.svc.ChkInsurancePayDate(s.ctx, carol, alice, sub.ID)
		s.NoError(err)
	})
}

func (s *BillingServiceSuite) TestUpdatePayDate() {
	sub := s.customerWithSubscription(alice, 100, s.now)

	s.Run("earlier date is rejected and nothing changes", func() {
		err := s.svc.UpdatePayDate(s.ctx, owner, alice, sub.ID, s.now.Add(-time.Hour))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		payDate, _ := s.svc.ChkInsurancePayDate(s.ctx, owner, alice, sub.ID)
		s.Equal(s.now, payDate)
	})

	s.Run("billing admin only", func() {
		err := s.svc.UpdatePayDate(s.ctx, alice, alice, sub.ID, s.now.Add(time.Hour))
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("later date", func() {
		later := s.now.Add(48 * time.Hour)
		s.Require().NoError(s.svc.UpdatePayDate(s.ctx, owner, alice, sub.ID, later))
		payDate, _ := s.svc.ChkInsurancePayDate(s.ctx, owner, alice, sub.ID)
		s.Equal(later, payDate)
	})

	s.Run("unknown subscription", func() {
		err := s.svc.UpdatePayDate(s.ctx, owner, alice, 42, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *BillingServiceSuite) TestAutoPayAndCancellation() {
	sub := s.customerWithSubscription(alice, 100, s.now)

	enabled, err := s.svc.UpdateAutoPay(s.ctx, alice, sub.ID)
	s.Require().NoError(err)
	s.True(enabled)
	status, err := s.svc.ChkAutoPayStatus(s.ctx, alice, sub.ID)
	s.Require().NoError(err)
	s.True(status)

	s.Run("other callers cannot touch the subscription", func() {
		_, err := s.svc.RegisterCustomer(s.ctx, bob)
		s.Require().NoError(err)
		_, err = s.svc.UpdateAutoPay(s.ctx, bob, sub.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Require().NoError(s.svc.CancelInsurance(s.ctx, alice, sub.ID))
	cancelled, err := s.svc.ChkCancelInsuranceStatus(s.ctx, alice, sub.ID)
	s.Require().NoError(err)
	s.True(cancelled)

	s.Run("cancellation is terminal", func() {
		s.True(dErrors.HasCode(s.svc.CancelInsurance(s.ctx, alice, sub.ID), dErrors.CodeInvalidState))
		_, err := s.svc.UpdateAutoPay(s.ctx, alice, sub.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		_, err = s.svc.ManualPay(s.ctx, alice, sub.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

func (s *BillingServiceSuite) TestManualPay() {
	sub := s.customerWithSubscription(alice, 100, s.now)

	s.Run("premium above balance changes nothing", func() {
		_, err := s.svc.AddBalance(s.ctx, alice, amt(60), amt(60))
		s.Require().NoError(err)
		_, err = s.svc.ManualPay(s.ctx, alice, sub.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInsufficientFunds))

		balance, _ := s.svc.GetCustomerBalance(s.ctx, alice)
		s.Equal("60", balance.String())
	})

	s.Run("paying the exact balance leaves zero and advances a month", func() {
		_, err := s.svc.AddBalance(s.ctx, alice, amt(40), amt(40))
		s.Require().NoError(err)

		receipt, err := s.svc.ManualPay(s.ctx, alice, sub.ID)
		s.Require().NoError(err)
		s.True(receipt.Balance.IsZero())
		s.Equal(s.now.AddDate(0, 1, 0), receipt.NextPayDate)

		due, payDate, err := s.svc.ChkManualPayInsurance(s.ctx, alice, sub.ID)
		s.Require().NoError(err)
		s.Equal("100", due.String())
		s.Equal(s.now.AddDate(0, 1, 0), payDate)

		t, _ := s.svc.ViewTotalMoney(s.ctx, owner)
		s.Equal("100", t.PremiumsCollected.String())
		s.Equal(1, s.events(alice, audit.EventPremiumPaid))
	})
}

func (s *BillingServiceSuite) TestConfiguredInterval() {
	s.svc.interval = models.Interval(7 * 24 * time.Hour)
	sub := s.customerWithSubscription(alice, 1, s.now)
	_, err := s.svc.AddBalance(s.ctx, alice, amt(1), amt(1))
	s.Require().NoError(err)

	receipt, err := s.svc.ManualPay(s.ctx, alice, sub.ID)
	s.Require().NoError(err)
	s.Equal(s.now.Add(7*24*time.Hour), receipt.NextPayDate)
}

func (s *BillingServiceSuite) TestTreasury() {
	_, err := s.svc.RegisterCustomer(s.ctx, alice)
	s.Require().NoError(err)
	_, err = s.svc.AddBalance(s.ctx, alice, amt(50), amt(50))
	s.Require().NoError(err)

	s.Run("billing admin only", func() {
		_, err := s.svc.WithdrawMoney(s.ctx, alice, amt(1))
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		_, err = s.svc.ViewTotalMoney(s.ctx, alice)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("cannot withdraw more than held", func() {
		_, err := s.svc.WithdrawMoney(s.ctx, owner, amt(51))
		s.True(dErrors.HasCode(err, dErrors.CodeInsufficientFunds))
	})

	s.Run("withdrawal", func() {
		t, err := s.svc.WithdrawMoney(s.ctx, owner, amt(20))
		s.Require().NoError(err)
		s.Equal("30", t.Held.String())
		s.Equal("20", t.TotalWithdrawn.String())
	})
}

func (s *BillingServiceSuite) TestAddAdmin() {
	s.Run("owner only", func() {
		s.True(dErrors.HasCode(s.svc.AddAdmin(s.ctx, alice, bob), dErrors.CodeForbidden))
	})

	s.Run("adding twice is a no-op", func() {
		s.Require().NoError(s.svc.AddAdmin(s.ctx, owner, carol))
		s.Require().NoError(s.svc.AddAdmin(s.ctx, owner, carol))
		admins, err := s.svc.Admins(s.ctx, owner)
		s.Require().NoError(err)
		s.Equal([]domain.Account{owner, carol}, admins)
		s.Equal(1, s.events(carol, audit.EventBillingAdminAdded))
	})

	s.Run("roster is visible to managers and hidden from customers", func() {
		admins, err := s.svc.Admins(s.ctx, carol)
		s.Require().NoError(err)
		s.Contains(admins, carol)

		_, err = s.svc.Admins(s.ctx, alice)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("billing admins are not identity admins", func() {
		ok, err := s.identity.IsAdmin(s.ctx, carol)
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *BillingServiceSuite) TestRunAutoPay() {
	funded := s.customerWithSubscription(alice, 100, s.now.Add(-time.Hour))
	broke := s.customerWithSubscription(bob, 100, s.now.Add(-time.Hour))
	future := s.customerWithSubscription(carol, 100, s.now.Add(time.Hour))

	for account, id := range map[domain.Account]domain.SubscriptionID{alice: funded.ID, bob: broke.ID, carol: future.ID} {
		_, err := s.svc.UpdateAutoPay(s.ctx, account, id)
		s.Require().NoError(err)
	}
	_, err := s.svc.AddBalance(s.ctx, alice, amt(150), amt(150))
	s.Require().NoError(err)
	_, err = s.svc.AddBalance(s.ctx, carol, amt(150), amt(150))
	s.Require().NoError(err)

	report, err := s.svc.RunAutoPay(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.AutoPayReport{Charged: 1, Failed: 1}, report)

	aliceBalance, _ := s.svc.GetCustomerBalance(s.ctx, alice)
	s.Equal("50", aliceBalance.String())
	carolBalance, _ := s.svc.GetCustomerBalance(s.ctx, carol)
	s.Equal("150", carolBalance.String())
	s.Equal(1, s.events(bob, audit.EventAutoPayFailed))

	s.Run("a paid subscription is not charged twice in the same period", func() {
		report, err := s.svc.RunAutoPay(s.ctx)
		s.Require().NoError(err)
		s.Equal(0, report.Charged)
		s.Equal(1, report.Failed)
	})
}
