package models

import (
	"time"

	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

// Interval is the billing period a successful payment advances a pay date by.
// The zero value is one calendar month.
type Interval time.Duration

// Advance returns the pay date one period after t.
func (i Interval) Advance(t time.Time) time.Time {
	if i <= 0 {
		return t.AddDate(0, 1, 0)
	}
	return t.Add(time.Duration(i))
}

// Subscription is a customer's billing relationship to a catalog policy.
// PayAmount is the premium agreed at approval and never follows later policy
// edits.
type Subscription struct {
	ID           domain.SubscriptionID
	PolicyID     domain.PolicyID
	PayAmount    domain.Amount
	PayDate      time.Time
	AutoPay      bool
	Cancelled    bool
	ApprovedBy   domain.Account
	ApprovedAt   time.Time
	LastPaidAt   time.Time
	PaymentsMade uint64
}

// IsDue reports whether auto-pay should charge the subscription at now.
func (s *Subscription) IsDue(now time.Time) bool {
	return s.AutoPay && !s.Cancelled && !s.PayDate.After(now)
}

// CustomerAccount is the billing aggregate: the customer's prepaid balance
// and every subscription issued to them. Subscription ids index Subscriptions.
type CustomerAccount struct {
	Account            domain.Account
	Balance            domain.Amount
	Subscriptions      []Subscription
	NextSubscriptionID domain.SubscriptionID
	CreatedAt          time.Time
}

func NewCustomerAccount(account domain.Account, now time.Time) (*CustomerAccount, error) {
	if account.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "customer account is required")
	}
	return &CustomerAccount{Account: account, CreatedAt: now}, nil
}

// Clone returns a deep copy safe to hand out of a store.
func (c *CustomerAccount) Clone() *CustomerAccount {
	cp := *c
	cp.Subscriptions = append([]Subscription(nil), c.Subscriptions...)
	return &cp
}

// Subscription returns the subscription with id, or false when the customer
// has none.
func (c *CustomerAccount) Subscription(id domain.SubscriptionID) (*Subscription, bool) {
	if uint64(id) >= uint64(len(c.Subscriptions)) {
		return nil, false
	}
	return &c.Subscriptions[id], true
}

func (c *CustomerAccount) Deposit(amount domain.Amount) {
	c.Balance = c.Balance.Add(amount)
}

// AddSubscription issues the next subscription id with auto-pay off.
func (c *CustomerAccount) AddSubscription(policyID domain.PolicyID, payAmount domain.Amount, payDate time.Time, by domain.Account, now time.Time) Subscription {
	sub := Subscription{
		ID:         c.NextSubscriptionID,
		PolicyID:   policyID,
		PayAmount:  payAmount,
		PayDate:    payDate,
		ApprovedBy: by,
		ApprovedAt: now,
	}
	c.Subscriptions = append(c.Subscriptions, sub)
	c.NextSubscriptionID++
	return sub
}

// CanReschedule rejects pay dates earlier than the current one.
func (c *CustomerAccount) CanReschedule(id domain.SubscriptionID, payDate time.Time) error {
	sub, ok := c.Subscription(id)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "subscription not found")
	}
	if payDate.Before(sub.PayDate) {
		return dErrors.New(dErrors.CodeValidation, "pay date cannot move earlier")
	}
	return nil
}

// CanChange rejects changes to a cancelled subscription.
func (c *CustomerAccount) CanChange(id domain.SubscriptionID) error {
	sub, ok := c.Subscription(id)
	if !ok {
		return dErrors.New(dErrors.CodeForbidden, "subscription does not belong to caller")
	}
	if sub.Cancelled {
		return dErrors.New(dErrors.CodeInvalidState, "subscription is cancelled")
	}
	return nil
}

// CanPay checks a charge of the subscription's premium against the balance.
func (c *CustomerAccount) CanPay(id domain.SubscriptionID) error {
	if err := c.CanChange(id); err != nil {
		return err
	}
	sub, _ := c.Subscription(id)
	if c.Balance.Cmp(sub.PayAmount) < 0 {
		return dErrors.New(dErrors.CodeInsufficientFunds, "balance cannot cover the premium")
	}
	return nil
}

// CanAutoPay is CanPay restricted to subscriptions auto-pay should charge at now.
func (c *CustomerAccount) CanAutoPay(id domain.SubscriptionID, now time.Time) error {
	sub, ok := c.Subscription(id)
	if !ok || !sub.IsDue(now) {
		return dErrors.New(dErrors.CodeInvalidState, "subscription is not due")
	}
	return c.CanPay(id)
}

// ApplyPayment debits one premium and advances the pay date by one interval.
func (c *CustomerAccount) ApplyPayment(id domain.SubscriptionID, now time.Time, interval Interval) {
	sub, ok := c.Subscription(id)
	if !ok {
		return
	}
	remaining, err := c.Balance.Sub(sub.PayAmount)
	if err != nil {
		return
	}
	c.Balance = remaining
	sub.PayDate = interval.Advance(sub.PayDate)
	sub.LastPaidAt = now
	sub.PaymentsMade++
}

// DueSubscriptions lists the ids auto-pay should charge at now.
func (c *CustomerAccount) DueSubscriptions(now time.Time) []domain.SubscriptionID {
	var ids []domain.SubscriptionID
	for i := range c.Subscriptions {
		if c.Subscriptions[i].IsDue(now) {
			ids = append(ids, c.Subscriptions[i].ID)
		}
	}
	return ids
}

// Receipt describes one committed premium payment.
type Receipt struct {
	Account        domain.Account
	SubscriptionID domain.SubscriptionID
	Amount         domain.Amount
	PaidAt         time.Time
	NextPayDate    time.Time
	Balance        domain.Amount
}

// Treasury aggregates every value deposited with billing. Held is what
// billing admins may withdraw.
type Treasury struct {
	Held              domain.Amount
	TotalDeposited    domain.Amount
	TotalWithdrawn    domain.Amount
	PremiumsCollected domain.Amount
}

func (t *Treasury) Deposit(value domain.Amount) {
	t.Held = t.Held.Add(value)
	t.TotalDeposited = t.TotalDeposited.Add(value)
}

func (t *Treasury) CollectPremium(amount domain.Amount) {
	t.PremiumsCollected = t.PremiumsCollected.Add(amount)
}

func (t *Treasury) CanWithdraw(amount domain.Amount) error {
	if t.Held.Cmp(amount) < 0 {
		return dErrors.New(dErrors.CodeInsufficientFunds, "treasury cannot cover the withdrawal")
	}
	return nil
}

func (t *Treasury) ApplyWithdrawal(amount domain.Amount) {
	if remaining, err := t.Held.Sub(amount); err == nil {
		t.Held = remaining
		t.TotalWithdrawn = t.TotalWithdrawn.Add(amount)
	}
}

// AutoPayReport summarizes one auto-pay sweep.
type AutoPayReport struct {
	Charged int
	Failed  int
	Skipped int
}
