package handler

import (
	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
)

// ProfileResponse is the public view of a profile. The password hash is never
// serialized.
type ProfileResponse struct {
	Account       domain.Account `json:"account"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Age           uint32         `json:"age"`
	RefundAddress domain.Account `json:"refund_address"`
	Registered    bool           `json:"registered"`
	CreatedAt     int64          `json:"created_at"`
}

func FromProfile(p *models.UserProfile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		Account:       p.Account,
		Name:          p.Name,
		Email:         p.Email,
		Age:           p.Age,
		RefundAddress: p.RefundAddress,
		Registered:    p.Registered,
		CreatedAt:     p.CreatedAt.Unix(),
	}
}

type SignInResponse struct {
	SignedIn bool        `json:"signed_in"`
	Role     domain.Role `json:"role"`
}

type SessionResponse struct {
	Account domain.Account `json:"account"`
	Role    domain.Role    `json:"role"`
}

type AccountsResponse struct {
	Accounts []domain.Account `json:"accounts"`
}

type IsAdminResponse struct {
	Account domain.Account `json:"account"`
	IsAdmin bool           `json:"is_admin"`
}

type AdminSetResponse struct {
	Owner  domain.Account   `json:"owner"`
	Admins []domain.Account `json:"admins"`
}

func FromAdminSet(set models.AdminSet) AdminSetResponse {
	return AdminSetResponse{Owner: set.Owner, Admins: nonNilAccounts(set.Admins)}
}
