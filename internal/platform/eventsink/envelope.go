// Package eventsink forwards journal events to external brokers.
package eventsink

import (
	"encoding/json"
	"fmt"

	audit "greatglobal/pkg/platform/audit"
)

// Envelope is the wire form of a journal event. Timestamps are integer
// seconds since epoch and amounts are decimal strings in accounting units.
type Envelope struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Action     string `json:"action"`
	Account    string `json:"account,omitempty"`
	ActorID    string `json:"actor_id,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Amount     string `json:"amount,omitempty"`
	Reason     string `json:"reason,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

func NewEnvelope(event audit.Event) Envelope {
	category := event.Category
	if category == "" {
		category = audit.AuditEvent(event.Action).Category()
	}
	return Envelope{
		ID:         event.ID.String(),
		Category:   string(category),
		Action:     event.Action,
		Account:    event.Account.String(),
		ActorID:    event.ActorID,
		Subject:    event.Subject,
		Amount:     event.Amount,
		Reason:     event.Reason,
		RequestID:  event.RequestID,
		OccurredAt: event.Timestamp.Unix(),
	}
}

// Encode marshals the event envelope.
func Encode(event audit.Event) ([]byte, error) {
	body, err := json.Marshal(NewEnvelope(event))
	if err != nil {
		return nil, fmt.Errorf("encode event envelope: %w", err)
	}
	return body, nil
}

// RoutingKey is "ledger.<category>.<action>", e.g. ledger.financial.premium_paid.
func RoutingKey(event audit.Event) string {
	env := NewEnvelope(event)
	return "ledger." + env.Category + "." + env.Action
}
