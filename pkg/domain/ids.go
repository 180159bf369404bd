package domain

import (
	"encoding/hex"
	"strconv"
	"strings"

	dErrors "greatglobal/pkg/domain-errors"
)

const accountHexLen = 40

// Account is the address-like key that identifies a caller on the host ledger.
// The canonical form is lower-case "0x" followed by 40 hex characters.
// The zero value means "no account".
type Account string

// ParseAccount validates and canonicalizes an account key at a trust boundary.
func ParseAccount(s string) (Account, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "account is required")
	}
	body, ok := strings.CutPrefix(strings.ToLower(raw), "0x")
	if !ok || len(body) != accountHexLen {
		return "", dErrors.New(dErrors.CodeInvalidInput, "account must be 0x followed by 40 hex characters")
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "account must be hex encoded")
	}
	return Account("0x" + body), nil
}

// MustAccount parses s and panics on failure. Intended for fixtures and seeds.
func MustAccount(s string) Account {
	a, err := ParseAccount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Account) String() string { return string(a) }

// IsNil reports whether the account is unset.
func (a Account) IsNil() bool { return a == "" }

// PolicyID is the global, monotonic identifier of a catalog policy. Ids start at 0
// and are never reassigned.
type PolicyID uint64

// ClaimID is a per-account claim sequence number.
type ClaimID uint64

// SubscriptionID is a per-customer billing subscription sequence number.
type SubscriptionID uint64

func (id PolicyID) String() string       { return strconv.FormatUint(uint64(id), 10) }
func (id ClaimID) String() string        { return strconv.FormatUint(uint64(id), 10) }
func (id SubscriptionID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParsePolicyID parses a decimal policy id.
func ParsePolicyID(s string) (PolicyID, error) {
	v, err := parseSeq(s, "policy id")
	return PolicyID(v), err
}

// ParseClaimID parses a decimal claim id.
func ParseClaimID(s string) (ClaimID, error) {
	v, err := parseSeq(s, "claim id")
	return ClaimID(v), err
}

// ParseSubscriptionID parses a decimal subscription id.
func ParseSubscriptionID(s string) (SubscriptionID, error) {
	v, err := parseSeq(s, "subscription id")
	return SubscriptionID(v), err
}

func parseSeq(s, field string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" must be a non-negative integer")
	}
	return v, nil
}

// Role is the session role currently bound to an account.
type Role string

const (
	RoleNone  Role = "none"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }
