package handler

import (
	"time"

	"greatglobal/internal/claims/models"
	"greatglobal/pkg/domain"
)

type ClaimResponse struct {
	ID        domain.ClaimID `json:"id"`
	Account   domain.Account `json:"account"`
	Amount    domain.Amount  `json:"amount"`
	Status    models.Status  `json:"status"`
	CreatedAt int64          `json:"created_at"`
	DecidedAt int64          `json:"decided_at,omitempty"`
	DecidedBy domain.Account `json:"decided_by,omitempty"`
	PaidAt    int64          `json:"paid_at,omitempty"`
	Payee     domain.Account `json:"payee,omitempty"`
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func FromClaim(c *models.Claim) ClaimResponse {
	return ClaimResponse{
		ID:        c.ID,
		Account:   c.Account,
		Amount:    c.Amount,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Unix(),
		DecidedAt: unixOrZero(c.DecidedAt),
		DecidedBy: c.DecidedBy,
		PaidAt:    unixOrZero(c.PaidAt),
		Payee:     c.Payee,
	}
}

type PoolResponse struct {
	Balance      domain.Amount `json:"balance"`
	TotalFunded  domain.Amount `json:"total_funded"`
	TotalPaidOut domain.Amount `json:"total_paid_out"`
}

func FromPool(p models.FundingPool) PoolResponse {
	return PoolResponse{Balance: p.Balance, TotalFunded: p.TotalFunded, TotalPaidOut: p.TotalPaidOut}
}

// UnprocessedResponse mirrors the parallel id and amount lists of a user's
// pending claims.
type UnprocessedResponse struct {
	IDs     []domain.ClaimID `json:"ids"`
	Amounts []domain.Amount  `json:"amounts"`
}

type PendingClaimResponse struct {
	Account domain.Account `json:"account"`
	ID      domain.ClaimID `json:"id"`
	Amount  domain.Amount  `json:"amount"`
}

type AllPendingResponse struct {
	Claims []PendingClaimResponse `json:"claims"`
}

func FromPending(pending []models.PendingClaim) AllPendingResponse {
	out := AllPendingResponse{Claims: make([]PendingClaimResponse, 0, len(pending))}
	for _, p := range pending {
		out.Claims = append(out.Claims, PendingClaimResponse(p))
	}
	return out
}
