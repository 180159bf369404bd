package models

import (
	"strings"
	"time"

	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

const maxNameLength = 128

// Policy is a catalog entry. Ids are assigned once and never reused; an
// inactive policy is archived, not deleted.
type Policy struct {
	ID             domain.PolicyID
	Name           string
	Premium        domain.Amount
	CoverageAmount domain.Amount
	AgeLimit       uint32
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PolicyInput is the full set of writable fields. Updates replace every field.
type PolicyInput struct {
	Name           string
	Premium        domain.Amount
	CoverageAmount domain.Amount
	AgeLimit       uint32
	Active         bool
}

// Validate checks the input before an id is allocated.
func (in PolicyInput) Validate() error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "policy name is required")
	}
	if len(name) > maxNameLength {
		return dErrors.New(dErrors.CodeInvariantViolation, "policy name must be 128 characters or less")
	}
	return nil
}

func NewPolicy(id domain.PolicyID, in PolicyInput, now time.Time) (*Policy, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Policy{
		ID:             id,
		Name:           strings.TrimSpace(in.Name),
		Premium:        in.Premium,
		CoverageAmount: in.CoverageAmount,
		AgeLimit:       in.AgeLimit,
		Active:         in.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ApplyUpdate overwrites every writable field.
func (p *Policy) ApplyUpdate(in PolicyInput, now time.Time) {
	p.Name = strings.TrimSpace(in.Name)
	p.Premium = in.Premium
	p.CoverageAmount = in.CoverageAmount
	p.AgeLimit = in.AgeLimit
	p.Active = in.Active
	p.UpdatedAt = now
}

// Archived reports whether the policy sits in the archived set.
func (p *Policy) Archived() bool {
	return !p.Active
}
