package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutermostCodeWins(t *testing.T) {
	inner := New(CodeNotFound, "claim not found")
	outer := Wrap(inner, CodeInternal, "failed to load claim")

	assert.Equal(t, CodeInternal, GetCode(outer))
	assert.True(t, HasCode(outer, CodeInternal))
	assert.False(t, Is(outer, CodeNotFound))
	assert.Equal(t, "failed to load claim", Message(outer))
	assert.Equal(t, "failed to load claim: claim not found", outer.Error())
	assert.ErrorIs(t, outer, inner)
}

func TestCodeSurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("billing: %w", New(CodeInsufficientFunds, "insufficient funds"))

	assert.Equal(t, CodeInsufficientFunds, GetCode(err))
	assert.Equal(t, "insufficient funds", Message(err))
}

func TestUncodedErrorsAreInternal(t *testing.T) {
	err := errors.New("connection reset")

	assert.Equal(t, CodeInternal, GetCode(err))
	assert.Empty(t, Message(err))
	assert.False(t, HasCode(err, CodeInternal))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:         http.StatusBadRequest,
		CodeInvalidInput:       http.StatusBadRequest,
		CodeInvariantViolation: http.StatusBadRequest,
		CodeUnauthorized:       http.StatusUnauthorized,
		CodeForbidden:          http.StatusForbidden,
		CodeNotFound:           http.StatusNotFound,
		CodeInvalidState:       http.StatusConflict,
		CodeConflict:           http.StatusConflict,
		CodeInsufficientFunds:  http.StatusUnprocessableEntity,
		CodeTimeout:            http.StatusGatewayTimeout,
		CodeInternal:           http.StatusInternalServerError,
		Code("unknown"):        http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), code)
	}
}
