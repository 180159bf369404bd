package handler

import (
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

// AmountRequest carries a decimal amount in accounting units.
type AmountRequest struct {
	Amount string `json:"amount"`

	parsedAmount domain.Amount
}

func (r *AmountRequest) Validate() error {
	a, err := domain.ParseAmount(r.Amount)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "amount: "+dErrors.Message(err))
	}
	if !a.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "amount must be greater than zero")
	}
	r.parsedAmount = a
	return nil
}

func (r *AmountRequest) ParsedAmount() domain.Amount {
	return r.parsedAmount
}

// DecisionRequest approves (true) or rejects (false) a claim.
type DecisionRequest struct {
	Approve *bool `json:"approve"`
}

func (r *DecisionRequest) Validate() error {
	if r.Approve == nil {
		return dErrors.New(dErrors.CodeValidation, "approve is required")
	}
	return nil
}
