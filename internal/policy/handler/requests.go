package handler

import (
	"strings"

	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

// PolicyRequest is the body of POST /policies and PUT /policies/{id}.
// Amounts are decimal strings in accounting units.
type PolicyRequest struct {
	Name           string `json:"name"`
	Premium        string `json:"premium"`
	CoverageAmount string `json:"coverage_amount"`
	AgeLimit       uint32 `json:"age_limit"`
	Active         bool   `json:"active"`

	parsedPremium  domain.Amount
	parsedCoverage domain.Amount
}

func (r *PolicyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// Validate parses the amounts.
func (r *PolicyRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	premium, err := domain.ParseAmount(r.Premium)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "premium: "+dErrors.Message(err))
	}
	coverage, err := domain.ParseAmount(r.CoverageAmount)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "coverage_amount: "+dErrors.Message(err))
	}
	r.parsedPremium = premium
	r.parsedCoverage = coverage
	return nil
}

func (r *PolicyRequest) ToInput() models.PolicyInput {
	return models.PolicyInput{
		Name:           r.Name,
		Premium:        r.parsedPremium,
		CoverageAmount: r.parsedCoverage,
		AgeLimit:       r.AgeLimit,
		Active:         r.Active,
	}
}
