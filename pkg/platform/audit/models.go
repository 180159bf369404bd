package audit

import (
	"time"

	"github.com/google/uuid"

	"greatglobal/pkg/domain"
)

// EventCategory classifies ledger events by their primary purpose.
// This enables different retention policies and sink routing.
type EventCategory string

const (
	// CategoryCompliance covers identity and privilege changes.
	// Examples: registrations, password resets, admin roster changes.
	CategoryCompliance EventCategory = "compliance"

	// CategoryFinancial covers every movement of value.
	// Examples: deposits, premium payments, claim payouts, treasury withdrawals.
	CategoryFinancial EventCategory = "financial"

	// CategoryOperations covers routine workflow transitions.
	// Examples: sign-ins, policy edits, package approvals.
	CategoryOperations EventCategory = "operations"
)

// Event is appended to the journal by every committed command. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Category  EventCategory
	Timestamp time.Time
	// Account is the account the event is about (claimant, customer, new admin).
	Account domain.Account
	// ActorID is the caller that issued the command when different from Account.
	ActorID string
	// Subject references the entity touched, e.g. "policy:3" or "claim:0".
	Subject string
	Action  string
	// Amount is set in accounting units for financial events.
	Amount    string
	Reason    string
	RequestID string
}

type AuditEvent string

const (
	// Identity events
	EventUserRegistered AuditEvent = "user_registered"
	EventUserSignedIn   AuditEvent = "user_signed_in"
	EventPasswordReset  AuditEvent = "password_reset"
	EventAdminSignedIn  AuditEvent = "admin_signed_in"
	EventUserLoggedOut  AuditEvent = "user_logged_out"
	EventAdminLoggedOut AuditEvent = "admin_logged_out"
	EventAdminAssigned  AuditEvent = "admin_assigned"
	EventAdminRemoved   AuditEvent = "admin_removed"

	// Policy catalog events
	EventPolicyCreated AuditEvent = "policy_created"
	EventPolicyUpdated AuditEvent = "policy_updated"

	// Claim ledger events
	EventClaimSubmitted AuditEvent = "claim_submitted"
	EventClaimApproved  AuditEvent = "claim_approved"
	EventClaimRejected  AuditEvent = "claim_rejected"
	EventPoolFunded     AuditEvent = "pool_funded"
	EventClaimPaid      AuditEvent = "claim_paid"

	// Billing events
	EventCustomerRegistered AuditEvent = "customer_registered"
	EventBalanceAdded       AuditEvent = "balance_added"
	EventInsuranceApproved  AuditEvent = "insurance_approved"
	EventPayDateUpdated     AuditEvent = "pay_date_updated"
	EventAutoPayToggled     AuditEvent = "autopay_toggled"
	EventInsuranceCancelled AuditEvent = "insurance_cancelled"
	EventPremiumPaid        AuditEvent = "premium_paid"
	EventAutoPayFailed      AuditEvent = "autopay_failed"
	EventTreasuryWithdrawn  AuditEvent = "treasury_withdrawn"
	EventBillingAdminAdded  AuditEvent = "billing_admin_added"

	// Package workflow events
	EventPackageRequested AuditEvent = "package_requested"
	EventPackageApproved  AuditEvent = "package_approved"
	EventPackageCancelled AuditEvent = "package_cancelled"
	EventPackageRejected  AuditEvent = "package_rejected"
)

// eventCategories maps each ledger event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	EventUserRegistered:    CategoryCompliance,
	EventPasswordReset:     CategoryCompliance,
	EventAdminAssigned:     CategoryCompliance,
	EventAdminRemoved:      CategoryCompliance,
	EventBillingAdminAdded: CategoryCompliance,

	EventPoolFunded:        CategoryFinancial,
	EventClaimPaid:         CategoryFinancial,
	EventBalanceAdded:      CategoryFinancial,
	EventPremiumPaid:       CategoryFinancial,
	EventAutoPayFailed:     CategoryFinancial,
	EventTreasuryWithdrawn: CategoryFinancial,

	EventUserSignedIn:       CategoryOperations,
	EventAdminSignedIn:      CategoryOperations,
	EventUserLoggedOut:      CategoryOperations,
	EventAdminLoggedOut:     CategoryOperations,
	EventPolicyCreated:      CategoryOperations,
	EventPolicyUpdated:      CategoryOperations,
	EventClaimSubmitted:     CategoryOperations,
	EventClaimApproved:      CategoryOperations,
	EventClaimRejected:      CategoryOperations,
	EventCustomerRegistered: CategoryOperations,
	EventInsuranceApproved:  CategoryOperations,
	EventPayDateUpdated:     CategoryOperations,
	EventAutoPayToggled:     CategoryOperations,
	EventInsuranceCancelled: CategoryOperations,
	EventPackageRequested:   CategoryOperations,
	EventPackageApproved:    CategoryOperations,
	EventPackageCancelled:   CategoryOperations,
	EventPackageRejected:    CategoryOperations,
}

// Category returns the EventCategory for this ledger event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}
