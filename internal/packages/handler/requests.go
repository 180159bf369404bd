package handler

import (
	"strings"

	dErrors "greatglobal/pkg/domain-errors"
)

const maxEmailLength = 254

// DecisionRequest names the user whose pending request an admin decides.
type DecisionRequest struct {
	Email string `json:"email"`
}

func (r *DecisionRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *DecisionRequest) Validate() error {
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if len(r.Email) > maxEmailLength || !strings.Contains(r.Email, "@") {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	return nil
}
