package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	dErrors "greatglobal/pkg/domain-errors"
)

// Decimals is the scaling factor between display units and accounting units.
const Decimals = 18

var unitScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// Amount is a non-negative integer in the accounting unit. The zero value is 0.
// Amount is immutable: arithmetic returns new values.
type Amount struct {
	v *big.Int
}

// Zero returns the zero amount.
func Zero() Amount { return Amount{} }

// NewAmount builds an amount from a non-negative int64.
func NewAmount(units int64) Amount {
	if units < 0 {
		panic("domain: negative amount")
	}
	return Amount{v: big.NewInt(units)}
}

// ParseAmount parses a base-10 integer string of accounting units.
func ParseAmount(s string) (Amount, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Amount{}, dErrors.New(dErrors.CodeInvalidInput, "amount is required")
	}
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Amount{}, dErrors.New(dErrors.CodeInvalidInput, "amount must be an integer")
	}
	if v.Sign() < 0 {
		return Amount{}, dErrors.New(dErrors.CodeInvalidInput, "amount must not be negative")
	}
	return Amount{v: v}, nil
}

// FromDisplay converts a display value such as "1.5" into accounting units.
// More than Decimals fractional digits is rejected.
func FromDisplay(s string) (Amount, error) {
	raw := strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(raw, ".")
	if len(frac) > Decimals {
		return Amount{}, dErrors.New(dErrors.CodeInvalidInput, "too many fractional digits")
	}
	if whole == "" {
		whole = "0"
	}
	return ParseAmount(whole + frac + strings.Repeat("0", Decimals-len(frac)))
}

func (a Amount) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Add returns a+b.
func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a-b, or an insufficient-funds error when b exceeds a.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Cmp(b) < 0 {
		return Amount{}, dErrors.New(dErrors.CodeInsufficientFunds, "insufficient funds")
	}
	return Amount{v: new(big.Int).Sub(a.big(), b.big())}, nil
}

// Cmp compares a and b like big.Int.Cmp.
func (a Amount) Cmp(b Amount) int { return a.big().Cmp(b.big()) }

// Equal reports whether a and b hold the same value.
func (a Amount) Equal(b Amount) bool { return a.Cmp(b) == 0 }

func (a Amount) IsZero() bool     { return a.big().Sign() == 0 }
func (a Amount) IsPositive() bool { return a.big().Sign() > 0 }

// String renders the amount as a base-10 integer of accounting units.
func (a Amount) String() string { return a.big().String() }

// Display renders the amount in display units with trailing zeros trimmed.
func (a Amount) Display() string {
	q, r := new(big.Int).QuoRem(a.big(), unitScale, new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	frac := fmt.Sprintf("%0*s", Decimals, r.String())
	return q.String() + "." + strings.TrimRight(frac, "0")
}

// MarshalJSON encodes the amount as a JSON string to avoid float precision loss.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a JSON string or integer literal.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value stores the amount as NUMERIC text.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan reads NUMERIC columns returned as text or bytes.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Amount{}
		return nil
	case string:
		parsed, err := ParseAmount(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		return a.Scan(string(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("scan amount: negative value %d", v)
		}
		*a = NewAmount(v)
		return nil
	default:
		return fmt.Errorf("scan amount: unsupported type %T", src)
	}
}
