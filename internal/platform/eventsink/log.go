package eventsink

import (
	"context"
	"log/slog"

	audit "greatglobal/pkg/platform/audit"
)

// LogSink writes events to the logger. Used when no broker is configured so
// the relay still drains the outbox.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, event audit.Event) error {
	s.logger.DebugContext(ctx, "journal event relayed",
		"id", event.ID,
		"action", event.Action,
		"routing_key", RoutingKey(event),
	)
	return nil
}
