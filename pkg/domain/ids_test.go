package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "greatglobal/pkg/domain-errors"
)

const validAccount = "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"

// TestParseAccount_Invariants validates the parsing invariant:
// "accounts are 0x followed by 40 hex characters, canonicalized to lower case"
func TestParseAccount_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseAccount("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects missing prefix", func(t *testing.T) {
		_, err := ParseAccount(strings.TrimPrefix(validAccount, "0x"))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects short body", func(t *testing.T) {
		_, err := ParseAccount(validAccount[:41])
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("canonicalizes mixed case", func(t *testing.T) {
		acct, err := ParseAccount("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
		require.NoError(t, err)
		assert.Equal(t, Account(validAccount), acct)
	})

	t.Run("accepts valid account", func(t *testing.T) {
		acct, err := ParseAccount(validAccount)
		require.NoError(t, err)
		assert.Equal(t, validAccount, acct.String())
		assert.False(t, acct.IsNil())
	})

	t.Run("zero value is nil", func(t *testing.T) {
		var acct Account
		assert.True(t, acct.IsNil())
	})
}

// TestParseAccount_SecurityInvariants validates that parsing rejects attack vectors
// at API entry points.
func TestParseAccount_SecurityInvariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE users;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "0x5b38da6a701c568545dc\x00cb03fcb875f56beddc4", true},
		{"Oversized input", "0x" + strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "0x5b38da6a701c568545dc\u200Bfcb03fcb875f56beddc", true},
		{"Non-hex characters", "0x5b38da6a701c568545dcfcb03fcb875f56beddzz", true},

		{"Whitespace only", "   ", true},
		{"Surrounding whitespace", "  " + validAccount + " ", false},
		{"Uppercase prefix", "0X5B38DA6A701C568545DCFCB03FCB875F56BEDDC4", false},

		{"Valid lowercase", validAccount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseSequenceIDs(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		id, err := ParsePolicyID("0")
		require.NoError(t, err)
		assert.Equal(t, PolicyID(0), id)
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := ParseClaimID("-1")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-numeric", func(t *testing.T) {
		_, err := ParseSubscriptionID("abc")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("round-trips through String", func(t *testing.T) {
		id, err := ParseSubscriptionID(SubscriptionID(42).String())
		require.NoError(t, err)
		assert.Equal(t, SubscriptionID(42), id)
	})
}
