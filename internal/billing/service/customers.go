package service

import (
	"context"
	"errors"
	"time"

	"greatglobal/internal/billing/models"
	"greatglobal/internal/platform/tracing"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/sentinel"
	"greatglobal/pkg/requestcontext"
)

// RegisterCustomer opens a zero-balance customer account for the caller.
// Registering again returns the existing account.
func (s *Service) RegisterCustomer(ctx context.Context, caller domain.Account) (customer *models.CustomerAccount, err error) {
	ctx, span := tracing.Start(ctx, "billing.RegisterCustomer")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	created := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.customers.FindByAccount(txCtx, caller)
		if err == nil {
			customer = existing
			return nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return wrapCustomerErr(err, "load customer")
		}
		c, err := models.NewCustomerAccount(caller, requestcontext.Now(txCtx))
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, dErrors.Message(err))
		}
		if err := s.customers.Create(txCtx, c); err != nil {
			return wrapCustomerErr(err, "create customer")
		}
		customer = c
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		if s.metrics != nil {
			s.metrics.IncrementCustomers()
		}
		s.emitter.Emit(ctx, audit.EventCustomerRegistered,
			"account", caller,
			"subject", "customer:"+caller.String(),
		)
	}
	return customer, nil
}

// AddBalance credits amount to the caller's balance. value is what the caller
// actually sent and must cover amount; all of it is held by the treasury.
func (s *Service) AddBalance(ctx context.Context, caller domain.Account, amount, value domain.Amount) (customer *models.CustomerAccount, err error) {
	ctx, span := tracing.Start(ctx, "billing.AddBalance")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	if value.Cmp(amount) < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "value sent is less than the amount credited")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.customers.Execute(txCtx, caller,
			func(*models.CustomerAccount) error { return nil },
			func(c *models.CustomerAccount) { c.Deposit(amount) },
		)
		if err != nil {
			return wrapCustomerErr(err, "credit balance")
		}
		if _, err := s.treasury.Execute(txCtx,
			func(*models.Treasury) error { return nil },
			func(t *models.Treasury) { t.Deposit(value) },
		); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to credit treasury")
		}
		customer = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, audit.EventBalanceAdded,
		"account", caller,
		"subject", "customer:"+caller.String(),
		"amount", amount,
	)
	return customer, nil
}

func (s *Service) GetCustomerBalance(ctx context.Context, caller domain.Account) (domain.Amount, error) {
	if err := requireCaller(caller); err != nil {
		return domain.Zero(), err
	}
	c, err := s.customers.FindByAccount(ctx, caller)
	if err != nil {
		return domain.Zero(), wrapCustomerErr(err, "load customer")
	}
	return c.Balance, nil
}

// UpdateAutoPay flips auto-pay on the caller's subscription and returns the
// new setting.
func (s *Service) UpdateAutoPay(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (enabled bool, err error) {
	ctx, span := tracing.Start(ctx, "billing.UpdateAutoPay")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return false, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.customers.Execute(txCtx, caller,
			func(c *models.CustomerAccount) error { return c.CanChange(id) },
			func(c *models.CustomerAccount) {
				sub, _ := c.Subscription(id)
				sub.AutoPay = !sub.AutoPay
			},
		)
		if err != nil {
			return wrapCustomerErr(err, "toggle auto-pay")
		}
		sub, _ := c.Subscription(id)
		enabled = sub.AutoPay
		return nil
	})
	if err != nil {
		return false, err
	}

	reason := "disabled"
	if enabled {
		reason = "enabled"
	}
	s.emitter.Emit(ctx, audit.EventAutoPayToggled,
		"account", caller,
		"subject", "subscription:"+id.String(),
		"reason", reason,
	)
	return enabled, nil
}

func (s *Service) ChkAutoPayStatus(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (bool, error) {
	sub, err := s.ownSubscription(ctx, caller, id)
	if err != nil {
		return false, err
	}
	return sub.AutoPay, nil
}

// CancelInsurance permanently cancels the caller's subscription.
func (s *Service) CancelInsurance(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (err error) {
	ctx, span := tracing.Start(ctx, "billing.CancelInsurance")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.customers.Execute(txCtx, caller,
			func(c *models.CustomerAccount) error { return c.CanChange(id) },
			func(c *models.CustomerAccount) {
				sub, _ := c.Subscription(id)
				sub.Cancelled = true
				sub.AutoPay = false
			},
		)
		if err != nil {
			return wrapCustomerErr(err, "cancel subscription")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, audit.EventInsuranceCancelled,
		"account", caller,
		"subject", "subscription:"+id.String(),
	)
	return nil
}

func (s *Service) ChkCancelInsuranceStatus(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (bool, error) {
	sub, err := s.ownSubscription(ctx, caller, id)
	if err != nil {
		return false, err
	}
	return sub.Cancelled, nil
}

// ManualPay charges one premium from the caller's balance and moves the pay
// date forward one billing interval.
func (s *Service) ManualPay(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (receipt models.Receipt, err error) {
	ctx, span := tracing.Start(ctx, "billing.ManualPay")
	defer func() { tracing.End(span, err) }()

	if err := requireCaller(caller); err != nil {
		return models.Receipt{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.charge(txCtx, caller, id, func(c *models.CustomerAccount) error { return c.CanPay(id) })
		if err != nil {
			return err
		}
		receipt = r
		return nil
	})
	if err != nil {
		return models.Receipt{}, err
	}

	s.recordPayment(ctx, receipt, "manual")
	return receipt, nil
}

// ChkManualPayInsurance returns what the caller's next payment costs and when
// it is due.
func (s *Service) ChkManualPayInsurance(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (domain.Amount, time.Time, error) {
	sub, err := s.ownSubscription(ctx, caller, id)
	if err != nil {
		return domain.Zero(), time.Time{}, err
	}
	return sub.PayAmount, sub.PayDate, nil
}

// charge debits one premium and credits premiums collected. It must run
// inside a transaction.
func (s *Service) charge(ctx context.Context, account domain.Account, id domain.SubscriptionID, validate func(*models.CustomerAccount) error) (models.Receipt, error) {
	now := requestcontext.Now(ctx)
	c, err := s.customers.Execute(ctx, account, validate,
		func(c *models.CustomerAccount) { c.ApplyPayment(id, now, s.interval) },
	)
	if err != nil {
		return models.Receipt{}, wrapCustomerErr(err, "charge premium")
	}
	sub, _ := c.Subscription(id)
	if _, err := s.treasury.Execute(ctx,
		func(*models.Treasury) error { return nil },
		func(t *models.Treasury) { t.CollectPremium(sub.PayAmount) },
	); err != nil {
		return models.Receipt{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record premium")
	}
	return models.Receipt{
		Account:        account,
		SubscriptionID: id,
		Amount:         sub.PayAmount,
		PaidAt:         now,
		NextPayDate:    sub.PayDate,
		Balance:        c.Balance,
	}, nil
}

func (s *Service) recordPayment(ctx context.Context, r models.Receipt, mode string) {
	if s.metrics != nil {
		s.metrics.IncrementPremiums(mode)
	}
	s.emitter.Emit(ctx, audit.EventPremiumPaid,
		"account", r.Account,
		"subject", "subscription:"+r.SubscriptionID.String(),
		"amount", r.Amount,
		"reason", mode,
	)
}
