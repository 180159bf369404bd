package handler

import (
	"strings"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

const (
	maxNameLength     = 128
	maxEmailLength    = 254
	maxPasswordLength = 72
)

// RegisterRequest is the body of POST /identity/register.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Age           uint32 `json:"age"`
	Password      string `json:"password"`
	RefundAddress string `json:"refund_address,omitempty"`

	parsedRefund domain.Account
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = models.NormalizeEmail(r.Email)
	r.RefundAddress = strings.TrimSpace(r.RefundAddress)
}

func (r *RegisterRequest) Validate() error {
	if len(r.Name) > maxNameLength {
		return dErrors.New(dErrors.CodeValidation, "name must be 128 characters or less")
	}
	if len(r.Email) > maxEmailLength {
		return dErrors.New(dErrors.CodeValidation, "email must be 254 characters or less")
	}
	if len(r.Password) > maxPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "password must be at most 72 bytes")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	if r.RefundAddress != "" {
		acct, err := domain.ParseAccount(r.RefundAddress)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "refund_address: "+dErrors.Message(err))
		}
		r.parsedRefund = acct
	}
	return nil
}

func (r *RegisterRequest) toModel() models.RegisterRequest {
	return models.RegisterRequest{
		Name:          r.Name,
		Email:         r.Email,
		Age:           r.Age,
		Password:      r.Password,
		RefundAddress: r.parsedRefund,
	}
}

// SignInRequest is the body of POST /identity/sign-in. Identifier is an email
// or a registered name.
type SignInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *SignInRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

func (r *SignInRequest) Validate() error {
	if r.Identifier == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "identifier and password are required")
	}
	return nil
}

// ResetPasswordRequest is the body of POST /identity/reset-password.
type ResetPasswordRequest struct {
	Identifier  string `json:"identifier"`
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

func (r *ResetPasswordRequest) Validate() error {
	if r.Identifier == "" {
		return dErrors.New(dErrors.CodeValidation, "identifier is required")
	}
	if r.NewPassword == "" {
		return dErrors.New(dErrors.CodeValidation, "new_password is required")
	}
	if len(r.NewPassword) > maxPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "new_password must be at most 72 bytes")
	}
	return nil
}

// AddressRequest carries a single account, used by admin sign-in and assignment.
type AddressRequest struct {
	Address string `json:"address"`

	parsedAddress domain.Account
}

func (r *AddressRequest) Validate() error {
	acct, err := domain.ParseAccount(r.Address)
	if err != nil {
		return err
	}
	r.parsedAddress = acct
	return nil
}

// ParsedAddress returns the validated account.
func (r *AddressRequest) ParsedAddress() domain.Account {
	return r.parsedAddress
}
