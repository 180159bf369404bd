package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

// DefaultMinAge is the minimum registration age.
const DefaultMinAge = 18

// UserProfile is owned by exactly one account and is never deleted once
// registration commits. Only the password hash changes after registration.
//
// Invariants:
//   - Account is set and immutable
//   - Name and Email are non-empty; Email is stored lower-cased
//   - PasswordHash is never empty
//   - Age is at least the registry's minimum at registration time
type UserProfile struct {
	Account       domain.Account
	Name          string
	Email         string
	Age           uint32
	PasswordHash  []byte
	RefundAddress domain.Account
	Registered    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUserProfile validates and constructs a profile.
func NewUserProfile(account domain.Account, name, email string, age, minAge uint32, passwordHash []byte, refund domain.Account, now time.Time) (*UserProfile, error) {
	if account.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "account is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name is required")
	}
	if len(name) > 128 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name must be 128 characters or less")
	}
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "a valid email is required")
	}
	if age < minAge {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "age is below the registration minimum")
	}
	if len(passwordHash) == 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password is required")
	}
	if refund.IsNil() {
		refund = account
	}
	return &UserProfile{
		Account:       account,
		Name:          name,
		Email:         email,
		Age:           age,
		PasswordHash:  passwordHash,
		RefundAddress: refund,
		Registered:    true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ApplyPasswordReset overwrites the password hash.
func (p *UserProfile) ApplyPasswordReset(hash []byte, now time.Time) {
	p.PasswordHash = hash
	p.UpdatedAt = now
}

// OwnedBy reports whether the profile belongs to account.
func (p *UserProfile) OwnedBy(account domain.Account) bool {
	return p.Account == account
}

// HasName reports whether name matches the profile name after case folding.
func (p *UserProfile) HasName(name string) bool {
	key := FoldName(name)
	return key != "" && key == FoldName(p.Name)
}

// FoldName builds the name lookup key. A Caser is stateful, so one is made per call.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// NormalizeEmail trims and lower-cases an email for indexing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session is the role currently bound to an account. At most one per account.
type Session struct {
	Account   domain.Account `json:"account"`
	Role      domain.Role    `json:"role"`
	Device    string         `json:"device,omitempty"`
	StartedAt time.Time      `json:"started_at"`
}

func NewSession(account domain.Account, role domain.Role, device string, now time.Time) *Session {
	return &Session{Account: account, Role: role, Device: device, StartedAt: now}
}

// AdminSet is a snapshot of the admin roster. The owner is always a member
// and can never be removed.
type AdminSet struct {
	Owner  domain.Account
	Admins []domain.Account
}

func (a AdminSet) Contains(account domain.Account) bool {
	if account == a.Owner {
		return true
	}
	for _, admin := range a.Admins {
		if admin == account {
			return true
		}
	}
	return false
}

// RegisterRequest carries the inputs of a registration.
type RegisterRequest struct {
	Name          string
	Email         string
	Age           uint32
	Password      string
	RefundAddress domain.Account
}
