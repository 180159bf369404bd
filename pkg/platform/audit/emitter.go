package audit

import (
	"context"
	"log/slog"

	"greatglobal/pkg/attrs"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/requestcontext"
)

// Publisher accepts journal events.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// Emitter writes an audit log line and appends the matching journal event.
// Services call it after their transaction commits; a journal failure is
// logged and never fails the command.
type Emitter struct {
	logger    *slog.Logger
	publisher Publisher
}

// NewEmitter builds an Emitter. Either argument may be nil.
func NewEmitter(logger *slog.Logger, publisher Publisher) *Emitter {
	return &Emitter{logger: logger, publisher: publisher}
}

// Emit records action with slog-style attributes. The keys "account",
// "actor", "subject", "amount" and "reason" populate the journal event.
func (e *Emitter) Emit(ctx context.Context, action AuditEvent, attributes ...any) {
	if e == nil {
		return
	}
	requestID := requestcontext.RequestID(ctx)
	if e.logger != nil {
		args := append([]any{}, attributes...)
		if requestID != "" {
			args = append(args, "request_id", requestID)
		}
		args = append(args, "event", string(action), "log_type", "audit")
		e.logger.InfoContext(ctx, string(action), args...)
	}
	if e.publisher == nil {
		return
	}

	event := Event{
		Account:   domain.Account(attrs.ExtractString(attributes, "account")),
		ActorID:   attrs.ExtractString(attributes, "actor"),
		Subject:   attrs.ExtractString(attributes, "subject"),
		Action:    string(action),
		Amount:    attrs.ExtractString(attributes, "amount"),
		Reason:    attrs.ExtractString(attributes, "reason"),
		RequestID: requestID,
	}
	if err := e.publisher.Emit(ctx, event); err != nil && e.logger != nil {
		e.logger.WarnContext(ctx, "failed to journal event",
			"event", string(action),
			"request_id", requestID,
			"error", err,
		)
	}
}
