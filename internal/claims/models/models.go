package models

import (
	"time"

	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Claim is a reimbursement request owned by one account. Status moves once
// from pending to approved or rejected; an approved claim is paid out at most once.
type Claim struct {
	ID        domain.ClaimID
	Account   domain.Account
	Amount    domain.Amount
	Status    Status
	CreatedAt time.Time
	DecidedAt time.Time
	DecidedBy domain.Account
	PaidAt    time.Time
	Payee     domain.Account
}

func NewClaim(id domain.ClaimID, account domain.Account, amount domain.Amount, now time.Time) (*Claim, error) {
	if account.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "claim account is required")
	}
	if !amount.IsPositive() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "claim amount must be greater than zero")
	}
	return &Claim{
		ID:        id,
		Account:   account,
		Amount:    amount,
		Status:    StatusPending,
		CreatedAt: now,
	}, nil
}

func (c *Claim) IsPending() bool { return c.Status == StatusPending }

func (c *Claim) IsPaid() bool { return !c.PaidAt.IsZero() }

// CanDecide rejects any decision on a claim that already left pending.
func (c *Claim) CanDecide() error {
	if !c.IsPending() {
		return dErrors.New(dErrors.CodeInvalidState, "claim is already "+string(c.Status))
	}
	return nil
}

func (c *Claim) ApplyDecision(approve bool, by domain.Account, now time.Time) {
	if approve {
		c.Status = StatusApproved
	} else {
		c.Status = StatusRejected
	}
	c.DecidedBy = by
	c.DecidedAt = now
}

func (c *Claim) CanDisburse() error {
	if c.Status != StatusApproved {
		return dErrors.New(dErrors.CodeInvalidState, "only approved claims can be paid")
	}
	if c.IsPaid() {
		return dErrors.New(dErrors.CodeInvalidState, "claim is already paid")
	}
	return nil
}

func (c *Claim) ApplyPayout(payee domain.Account, now time.Time) {
	c.Payee = payee
	c.PaidAt = now
}

// PendingClaim is one row of the cross-account unprocessed claims view.
type PendingClaim struct {
	Account domain.Account
	ID      domain.ClaimID
	Amount  domain.Amount
}

// FundingPool holds value deposited by any caller. It only decreases through
// claim payouts.
type FundingPool struct {
	Balance      domain.Amount
	TotalFunded  domain.Amount
	TotalPaidOut domain.Amount
}

func (p *FundingPool) Deposit(amount domain.Amount) {
	p.Balance = p.Balance.Add(amount)
	p.TotalFunded = p.TotalFunded.Add(amount)
}

// CanPay reports an insufficient-funds error when the balance cannot cover amount.
func (p *FundingPool) CanPay(amount domain.Amount) error {
	if p.Balance.Cmp(amount) < 0 {
		return dErrors.New(dErrors.CodeInsufficientFunds, "funding pool cannot cover the claim")
	}
	return nil
}

func (p *FundingPool) ApplyPayout(amount domain.Amount) {
	if remaining, err := p.Balance.Sub(amount); err == nil {
		p.Balance = remaining
		p.TotalPaidOut = p.TotalPaidOut.Add(amount)
	}
}
