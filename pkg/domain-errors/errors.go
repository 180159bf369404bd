// Package domainerrors defines the coded error taxonomy shared by every module.
//
// Services return these errors to callers; transports translate the code into a
// status (see ToHTTPStatus). Stores return sentinel errors instead and let the
// service pick the code.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// Validation: malformed or out-of-range input, rejected before any mutation.
	CodeValidation   Code = "validation_error"
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"

	// Authentication: credential mismatch.
	CodeUnauthorized Code = "unauthorized"

	// Authorization: caller lacks the required role or ownership.
	CodeForbidden Code = "forbidden"

	CodeNotFound Code = "not_found"

	// Invalid state: operation not legal for the entity's current state.
	CodeInvalidState Code = "invalid_state"
	CodeConflict     Code = "conflict"

	CodeInsufficientFunds Code = "insufficient_funds"

	// CodeInvariantViolation is raised by model constructors; services convert it
	// to CodeValidation before it reaches a caller.
	CodeInvariantViolation Code = "invariant_violation"

	CodeTimeout  Code = "timeout"
	CodeInternal Code = "internal_error"
)

// Error is a domain error carrying a code, a caller-safe message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether the outermost domain error in err's chain carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias for HasCode kept for handler readability.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// GetCode returns the outermost code, or CodeInternal for uncoded errors.
func GetCode(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Message returns the caller-safe message of the outermost domain error.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a code to the HTTP status the transport should return.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest, CodeInvalidInput, CodeInvariantViolation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidState, CodeConflict:
		return http.StatusConflict
	case CodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
