package handler

import (
	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
)

type PolicyResponse struct {
	ID             domain.PolicyID `json:"id"`
	Name           string          `json:"name"`
	Premium        domain.Amount   `json:"premium"`
	CoverageAmount domain.Amount   `json:"coverage_amount"`
	AgeLimit       uint32          `json:"age_limit"`
	Active         bool            `json:"active"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}

func FromPolicy(p *models.Policy) PolicyResponse {
	return PolicyResponse{
		ID:             p.ID,
		Name:           p.Name,
		Premium:        p.Premium,
		CoverageAmount: p.CoverageAmount,
		AgeLimit:       p.AgeLimit,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt.Unix(),
		UpdatedAt:      p.UpdatedAt.Unix(),
	}
}

// PolicyListResponse carries the ids in catalog order alongside the full entries.
type PolicyListResponse struct {
	IDs      []domain.PolicyID `json:"ids"`
	Policies []PolicyResponse  `json:"policies"`
}

func FromPolicies(policies []*models.Policy) PolicyListResponse {
	resp := PolicyListResponse{
		IDs:      make([]domain.PolicyID, 0, len(policies)),
		Policies: make([]PolicyResponse, 0, len(policies)),
	}
	for _, p := range policies {
		resp.IDs = append(resp.IDs, p.ID)
		resp.Policies = append(resp.Policies, FromPolicy(p))
	}
	return resp
}

type AvailabilityResponse struct {
	ID        domain.PolicyID `json:"id"`
	Available bool            `json:"available"`
}
