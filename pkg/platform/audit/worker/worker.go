package worker

import (
	"context"
	"log/slog"

	audit "greatglobal/pkg/platform/audit"
)

// Worker consumes journal events from a channel and persists them. The
// publisher runs one in async mode; it exits once the inbox is closed and drained.
type Worker struct {
	store   audit.Store
	inbox   <-chan audit.Event
	logger  *slog.Logger
	metrics *Metrics
}

// NewWorker builds a Worker. metrics may be nil.
func NewWorker(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger, metrics *Metrics) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger, metrics: metrics}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, event); err != nil {
				w.metrics.incAppendFailures()
				w.logger.ErrorContext(ctx, "failed to append journal event",
					"action", event.Action,
					"error", err,
				)
				continue
			}
			w.metrics.incAppended()
		}
	}
}
