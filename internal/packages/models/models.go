package models

import (
	"strings"
	"time"

	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
)

// PackageSubscription is a user's request to join a policy package. It is keyed
// by (UserEmail, PackageID); at most one request per key is pending.
type PackageSubscription struct {
	UserEmail   string
	PackageID   domain.PolicyID
	Account     domain.Account
	Status      Status
	RequestedAt time.Time
	DecidedAt   time.Time
	DecidedBy   domain.Account
}

func NewPackageSubscription(email string, packageID domain.PolicyID, account domain.Account, now time.Time) (*PackageSubscription, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user email is required")
	}
	if account.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "account is required")
	}
	return &PackageSubscription{
		UserEmail:   email,
		PackageID:   packageID,
		Account:     account,
		Status:      StatusPending,
		RequestedAt: now,
	}, nil
}

func (p *PackageSubscription) IsPending() bool { return p.Status == StatusPending }

func (p *PackageSubscription) CanDecide() error {
	if !p.IsPending() {
		return dErrors.New(dErrors.CodeInvalidState, "package request is already "+string(p.Status))
	}
	return nil
}

func (p *PackageSubscription) Approve(by domain.Account, now time.Time) {
	p.Status = StatusApproved
	p.DecidedBy = by
	p.DecidedAt = now
}

// Cancel ends a pending request. by is the requesting user when they withdraw
// it, or the admin who rejected it.
func (p *PackageSubscription) Cancel(by domain.Account, now time.Time) {
	p.Status = StatusCancelled
	p.DecidedBy = by
	p.DecidedAt = now
}

// Entry is one row of a partitioned package view.
type Entry struct {
	UserEmail string
	PackageID domain.PolicyID
}

type Partitions struct {
	Approved  []Entry
	Cancelled []Entry
	Pending   []Entry
}

// Partition splits requests by status, keeping their order.
func Partition(subs []*PackageSubscription) Partitions {
	out := Partitions{Approved: []Entry{}, Cancelled: []Entry{}, Pending: []Entry{}}
	for _, s := range subs {
		e := Entry{UserEmail: s.UserEmail, PackageID: s.PackageID}
		switch s.Status {
		case StatusApproved:
			out.Approved = append(out.Approved, e)
		case StatusCancelled:
			out.Cancelled = append(out.Cancelled, e)
		default:
			out.Pending = append(out.Pending, e)
		}
	}
	return out
}
