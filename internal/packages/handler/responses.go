package handler

import (
	"greatglobal/internal/packages/models"
	"greatglobal/pkg/domain"
)

type SubscriptionResponse struct {
	UserEmail   string          `json:"user_email"`
	PackageID   domain.PolicyID `json:"package_id"`
	Account     domain.Account  `json:"account"`
	Status      models.Status   `json:"status"`
	RequestedAt int64           `json:"requested_at"`
	DecidedAt   int64           `json:"decided_at,omitempty"`
}

func FromSubscription(s *models.PackageSubscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		UserEmail:   s.UserEmail,
		PackageID:   s.PackageID,
		Account:     s.Account,
		Status:      s.Status,
		RequestedAt: s.RequestedAt.Unix(),
	}
	if !s.DecidedAt.IsZero() {
		resp.DecidedAt = s.DecidedAt.Unix()
	}
	return resp
}

type EntryResponse struct {
	UserEmail string          `json:"user_email"`
	PackageID domain.PolicyID `json:"package_id"`
}

type PartitionsResponse struct {
	Approved  []EntryResponse `json:"approved"`
	Cancelled []EntryResponse `json:"cancelled"`
	Pending   []EntryResponse `json:"pending"`
}

func entries(in []models.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(in))
	for _, e := range in {
		out = append(out, EntryResponse(e))
	}
	return out
}

func FromPartitions(p models.Partitions) PartitionsResponse {
	return PartitionsResponse{
		Approved:  entries(p.Approved),
		Cancelled: entries(p.Cancelled),
		Pending:   entries(p.Pending),
	}
}
