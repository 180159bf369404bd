package handler

import (
	"time"

	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

func parsePositive(field, raw string) (domain.Amount, error) {
	a, err := domain.ParseAmount(raw)
	if err != nil {
		return domain.Amount{}, dErrors.New(dErrors.CodeValidation, field+": "+dErrors.Message(err))
	}
	if !a.IsPositive() {
		return domain.Amount{}, dErrors.New(dErrors.CodeValidation, field+" must be greater than zero")
	}
	return a, nil
}

// DepositRequest credits Amount to the caller's balance. Value is what was
// actually sent; it defaults to Amount.
type DepositRequest struct {
	Amount string `json:"amount"`
	Value  string `json:"value,omitempty"`

	parsedAmount domain.Amount
	parsedValue  domain.Amount
}

func (r *DepositRequest) Validate() error {
	amount, err := parsePositive("amount", r.Amount)
	if err != nil {
		return err
	}
	value := amount
	if r.Value != "" {
		if value, err = domain.ParseAmount(r.Value); err != nil {
			return dErrors.New(dErrors.CodeValidation, "value: "+dErrors.Message(err))
		}
	}
	r.parsedAmount, r.parsedValue = amount, value
	return nil
}

type ApproveInsuranceRequest struct {
	PolicyID  domain.PolicyID `json:"policy_id"`
	PayAmount string          `json:"pay_amount"`
	PayDate   int64           `json:"pay_date"`

	parsedPayAmount domain.Amount
}

func (r *ApproveInsuranceRequest) Validate() error {
	amount, err := parsePositive("pay_amount", r.PayAmount)
	if err != nil {
		return err
	}
	if r.PayDate <= 0 {
		return dErrors.New(dErrors.CodeValidation, "pay_date is required")
	}
	r.parsedPayAmount = amount
	return nil
}

func (r *ApproveInsuranceRequest) payDate() time.Time {
	return time.Unix(r.PayDate, 0).UTC()
}

type PayDateRequest struct {
	PayDate int64 `json:"pay_date"`
}

func (r *PayDateRequest) Validate() error {
	if r.PayDate <= 0 {
		return dErrors.New(dErrors.CodeValidation, "pay_date is required")
	}
	return nil
}

type WithdrawRequest struct {
	Amount string `json:"amount"`

	parsedAmount domain.Amount
}

func (r *WithdrawRequest) Validate() error {
	amount, err := parsePositive("amount", r.Amount)
	if err != nil {
		return err
	}
	r.parsedAmount = amount
	return nil
}

type AdminRequest struct {
	Address string `json:"address"`

	parsedAddress domain.Account
}

func (r *AdminRequest) Validate() error {
	addr, err := domain.ParseAccount(r.Address)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "address: "+dErrors.Message(err))
	}
	r.parsedAddress = addr
	return nil
}
