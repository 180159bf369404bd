package service

import (
	"context"
	"time"

	"greatglobal/internal/billing/models"
	"greatglobal/internal/platform/tracing"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/requestcontext"
)

// ApproveInsurance issues a subscription to an existing customer for an active
// policy. payAmount is the agreed premium and may differ from the policy's.
func (s *Service) ApproveInsurance(ctx context.Context, caller, customer domain.Account, policyID domain.PolicyID, payAmount domain.Amount, payDate time.Time) (sub models.Subscription, err error) {
	ctx, span := tracing.Start(ctx, "billing.ApproveInsurance")
	defer func() { tracing.End(span, err) }()

	if err := s.auth.RequireSession(ctx, caller, domain.RoleAdmin); err != nil {
		return models.Subscription{}, err
	}
	if err := requirePositive(payAmount); err != nil {
		return models.Subscription{}, err
	}
	if payDate.IsZero() {
		return models.Subscription{}, dErrors.New(dErrors.CodeValidation, "pay date is required")
	}

	p, err := s.policies.GetPolicy(ctx, policyID)
	if err != nil {
		return models.Subscription{}, err
	}
	if !p.Active {
		return models.Subscription{}, dErrors.New(dErrors.CodeInvalidState, "policy is archived")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		var issued models.Subscription
		_, err := s.customers.Execute(txCtx, customer,
			func(*models.CustomerAccount) error { return nil },
			func(c *models.CustomerAccount) {
				issued = c.AddSubscription(policyID, payAmount, payDate, caller, now)
			},
		)
		if err != nil {
			return wrapCustomerErr(err, "issue subscription")
		}
		sub = issued
		return nil
	})
	if err != nil {
		return models.Subscription{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementSubscriptions()
	}
	s.emitter.Emit(ctx, audit.EventInsuranceApproved,
		"account", customer,
		"actor", caller,
		"subject", "subscription:"+sub.ID.String(),
		"amount", payAmount,
		"reason", "policy:"+policyID.String(),
	)
	return sub, nil
}

// UpdatePayDate moves a subscription's pay date. Dates only move forward.
func (s *Service) UpdatePayDate(ctx context.Context, caller, customer domain.Account, id domain.SubscriptionID, payDate time.Time) (err error) {
	ctx, span := tracing.Start(ctx, "billing.UpdatePayDate")
	defer func() { tracing.End(span, err) }()

	if err := s.requireBillingAdmin(ctx, caller); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.customers.Execute(txCtx, customer,
			func(c *models.CustomerAccount) error { return c.CanReschedule(id, payDate) },
			func(c *models.CustomerAccount) {
				sub, _ := c.Subscription(id)
				sub.PayDate = payDate
			},
		)
		if err != nil {
			return wrapCustomerErr(err, "update pay date")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, audit.EventPayDateUpdated,
		"account", customer,
		"actor", caller,
		"subject", "subscription:"+id.String(),
		"reason", payDate.UTC().Format(time.RFC3339),
	)
	return nil
}

func (s *Service) ChkInsurancePayDate(ctx context.Context, caller, customer domain.Account, id domain.SubscriptionID) (time.Time, error) {
	if err := s.requireManager(ctx, caller); err != nil {
		return time.Time{}, err
	}
	c, err := s.customers.FindByAccount(ctx, customer)
	if err != nil {
		return time.Time{}, wrapCustomerErr(err, "load customer")
	}
	sub, ok := c.Subscription(id)
	if !ok {
		return time.Time{}, dErrors.New(dErrors.CodeNotFound, "subscription not found")
	}
	return sub.PayDate, nil
}

// WithdrawMoney moves value out of the treasury.
func (s *Service) WithdrawMoney(ctx context.Context, caller domain.Account, amount domain.Amount) (treasury models.Treasury, err error) {
	ctx, span := tracing.Start(ctx, "billing.WithdrawMoney")
	defer func() { tracing.End(span, err) }()

	if err := s.requireBillingAdmin(ctx, caller); err != nil {
		return models.Treasury{}, err
	}
	if err := requirePositive(amount); err != nil {
		return models.Treasury{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.treasury.Execute(txCtx,
			func(t *models.Treasury) error { return t.CanWithdraw(amount) },
			func(t *models.Treasury) { t.ApplyWithdrawal(amount) },
		)
		if err != nil {
			return wrapCustomerErr(err, "withdraw from treasury")
		}
		treasury = t
		return nil
	})
	if err != nil {
		return models.Treasury{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementWithdrawals()
	}
	s.emitter.Emit(ctx, audit.EventTreasuryWithdrawn,
		"account", caller,
		"subject", "treasury",
		"amount", amount,
	)
	return treasury, nil
}

func (s *Service) ViewTotalMoney(ctx context.Context, caller domain.Account) (models.Treasury, error) {
	if err := s.requireBillingAdmin(ctx, caller); err != nil {
		return models.Treasury{}, err
	}
	t, err := s.treasury.Get(ctx)
	if err != nil {
		return models.Treasury{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load treasury")
	}
	return t, nil
}

// AddAdmin grants billing admin to address. Only the owner may grow the
// roster; adding an existing member is a no-op.
func (s *Service) AddAdmin(ctx context.Context, caller, address domain.Account) (err error) {
	ctx, span := tracing.Start(ctx, "billing.AddAdmin")
	defer func() { tracing.End(span, err) }()

	if caller != s.owner {
		return dErrors.New(dErrors.CodeForbidden, "only the owner can add billing admins")
	}
	if address.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "address is required")
	}

	added, err := s.roster.Add(ctx, address)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add billing admin")
	}
	if !added {
		return nil
	}
	s.emitter.Emit(ctx, audit.EventBillingAdminAdded,
		"account", address,
		"actor", caller,
		"subject", "billing_admin:"+address.String(),
	)
	return nil
}

// Admins lists the billing roster in the order members were added. Only
// managers may read it.
func (s *Service) Admins(ctx context.Context, caller domain.Account) ([]domain.Account, error) {
	if err := s.requireManager(ctx, caller); err != nil {
		return nil, err
	}
	members, err := s.roster.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list billing admins")
	}
	return members, nil
}

// Customer returns a customer's account with its subscriptions. Callers see
// their own; managers see anyone's.
func (s *Service) Customer(ctx context.Context, caller, customer domain.Account) (*models.CustomerAccount, error) {
	if caller != customer {
		if err := s.requireManager(ctx, caller); err != nil {
			return nil, err
		}
	}
	c, err := s.customers.FindByAccount(ctx, customer)
	if err != nil {
		return nil, wrapCustomerErr(err, "load customer")
	}
	return c, nil
}
