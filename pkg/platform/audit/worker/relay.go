package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/circuit"
)

// Sink receives journal events forwarded by the relay (Kafka topic, AMQP exchange).
type Sink interface {
	Publish(ctx context.Context, event audit.Event) error
}

const (
	defaultRelayInterval = 2 * time.Second
	defaultRelayBatch    = 100
)

// Relay forwards unpublished journal entries to a sink and marks them published.
// Delivery is at-least-once: a crash between Publish and MarkPublished replays the batch.
type Relay struct {
	outbox   audit.Outbox
	sink     Sink
	logger   *slog.Logger
	interval time.Duration
	batch    int
	breaker  *circuit.Breaker
	metrics  *Metrics
}

type RelayOption func(*Relay)

func WithInterval(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatchSize(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.batch = n
		}
	}
}

// WithBreaker skips relay passes while the sink keeps failing.
func WithBreaker(b *circuit.Breaker) RelayOption {
	return func(r *Relay) {
		r.breaker = b
	}
}

func WithRelayMetrics(m *Metrics) RelayOption {
	return func(r *Relay) {
		r.metrics = m
	}
}

func NewRelay(outbox audit.Outbox, sink Sink, logger *slog.Logger, opts ...RelayOption) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Relay{
		outbox:   outbox,
		sink:     sink,
		logger:   logger,
		interval: defaultRelayInterval,
		batch:    defaultRelayBatch,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		if _, err := r.RunOnce(ctx); err != nil {
			r.logger.WarnContext(ctx, "journal relay pass failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce relays a single batch and returns how many events were published.
// Publishing stops at the first sink failure so ordering is preserved.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	if r.breaker != nil && !r.breaker.Allow() {
		r.metrics.incBreakerSkips()
		return 0, nil
	}

	events, err := r.outbox.Unpublished(ctx, r.batch)
	if err != nil {
		return 0, fmt.Errorf("load unpublished events: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	done := make([]uuid.UUID, 0, len(events))
	var publishErr error
	for _, event := range events {
		if err := r.sink.Publish(ctx, event); err != nil {
			publishErr = fmt.Errorf("publish event %s: %w", event.ID, err)
			break
		}
		done = append(done, event.ID)
	}

	r.recordOutcome(ctx, publishErr)
	r.metrics.addRelayed(len(done))

	if len(done) > 0 {
		if err := r.outbox.MarkPublished(ctx, done); err != nil {
			return 0, fmt.Errorf("mark events published: %w", err)
		}
	}
	return len(done), publishErr
}

func (r *Relay) recordOutcome(ctx context.Context, publishErr error) {
	if publishErr != nil {
		r.metrics.incRelayFailures()
	}
	if r.breaker == nil {
		return
	}
	if publishErr != nil {
		if _, change := r.breaker.RecordFailure(); change.Opened {
			r.logger.WarnContext(ctx, "event sink breaker opened", "sink", r.breaker.Name())
		}
	} else if _, change := r.breaker.RecordSuccess(); change.Closed {
		r.logger.InfoContext(ctx, "event sink breaker closed", "sink", r.breaker.Name())
	}
	r.metrics.setBreakerState(r.breaker.IsOpen())
}
