package handler

import (
	"time"

	"greatglobal/internal/billing/models"
	"greatglobal/pkg/domain"
)

type SubscriptionResponse struct {
	ID           domain.SubscriptionID `json:"id"`
	PolicyID     domain.PolicyID       `json:"policy_id"`
	PayAmount    domain.Amount         `json:"pay_amount"`
	PayDate      int64                 `json:"pay_date"`
	AutoPay      bool                  `json:"autopay"`
	Cancelled    bool                  `json:"cancelled"`
	LastPaidAt   int64                 `json:"last_paid_at,omitempty"`
	PaymentsMade uint64                `json:"payments_made"`
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func FromSubscription(s *models.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           s.ID,
		PolicyID:     s.PolicyID,
		PayAmount:    s.PayAmount,
		PayDate:      s.PayDate.Unix(),
		AutoPay:      s.AutoPay,
		Cancelled:    s.Cancelled,
		LastPaidAt:   unixOrZero(s.LastPaidAt),
		PaymentsMade: s.PaymentsMade,
	}
}

type CustomerResponse struct {
	Account       domain.Account         `json:"account"`
	Balance       domain.Amount          `json:"balance"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	CreatedAt     int64                  `json:"created_at"`
}

func FromCustomer(c *models.CustomerAccount) CustomerResponse {
	subs := make([]SubscriptionResponse, 0, len(c.Subscriptions))
	for i := range c.Subscriptions {
		subs = append(subs, FromSubscription(&c.Subscriptions[i]))
	}
	return CustomerResponse{
		Account:       c.Account,
		Balance:       c.Balance,
		Subscriptions: subs,
		CreatedAt:     c.CreatedAt.Unix(),
	}
}

type BalanceResponse struct {
	Account domain.Account `json:"account"`
	Balance domain.Amount  `json:"balance"`
}

type PayDateResponse struct {
	PayDate int64 `json:"pay_date"`
}

type AutoPayResponse struct {
	AutoPay bool `json:"autopay"`
}

type CancelledResponse struct {
	Cancelled bool `json:"cancelled"`
}

type DueResponse struct {
	AmountDue domain.Amount `json:"amount_due"`
	PayDate   int64         `json:"pay_date"`
}

type ReceiptResponse struct {
	SubscriptionID domain.SubscriptionID `json:"subscription_id"`
	Amount         domain.Amount         `json:"amount"`
	PaidAt         int64                 `json:"paid_at"`
	NextPayDate    int64                 `json:"next_pay_date"`
	Balance        domain.Amount         `json:"balance"`
}

func FromReceipt(r models.Receipt) ReceiptResponse {
	return ReceiptResponse{
		SubscriptionID: r.SubscriptionID,
		Amount:         r.Amount,
		PaidAt:         r.PaidAt.Unix(),
		NextPayDate:    r.NextPayDate.Unix(),
		Balance:        r.Balance,
	}
}

type TreasuryResponse struct {
	Held              domain.Amount `json:"held"`
	TotalDeposited    domain.Amount `json:"total_deposited"`
	TotalWithdrawn    domain.Amount `json:"total_withdrawn"`
	PremiumsCollected domain.Amount `json:"premiums_collected"`
}

func FromTreasury(t models.Treasury) TreasuryResponse {
	return TreasuryResponse(t)
}

type AdminsResponse struct {
	Admins []domain.Account `json:"admins"`
}
