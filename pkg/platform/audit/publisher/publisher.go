package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"greatglobal/pkg/domain"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/audit/worker"
	"greatglobal/pkg/requestcontext"
)

// ErrBufferFull is returned in async mode when the buffer cannot accept another event.
var ErrBufferFull = errors.New("audit buffer full")

// Publisher stamps journal events and writes them to the store, either inline
// (sync mode, the default) or through a buffered worker (async mode).
type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	metrics *worker.Metrics

	bufferSize int
	buffer     chan audit.Event
	done       chan struct{}
	closeOnce  sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer enables async mode with a buffer of n events.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		p.bufferSize = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithMetrics records append counts for the journal.
func WithMetrics(m *worker.Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize > 0 {
		p.buffer = make(chan audit.Event, p.bufferSize)
		p.done = make(chan struct{})
		w := worker.NewWorker(store, p.buffer, p.logger, p.metrics)
		go func() {
			defer close(p.done)
			_ = w.Run(context.Background())
		}()
	}
	return p
}

// Emit stamps the event with an id, timestamp, category and request id, then
// persists it. In async mode a full buffer drops the event with ErrBufferFull.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if p.buffer == nil {
		if err := p.store.Append(ctx, event); err != nil {
			return err
		}
		if p.metrics != nil {
			p.metrics.Appended.Inc()
		}
		return nil
	}

	select {
	case p.buffer <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.logger.WarnContext(ctx, "journal buffer full, dropping event", "action", event.Action)
		return ErrBufferFull
	}
}

// List returns the journal entries about an account.
func (p *Publisher) List(ctx context.Context, account domain.Account) ([]audit.Event, error) {
	return p.store.ListByAccount(ctx, account)
}

// Close drains buffered events in async mode. Safe to call more than once.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		if p.buffer == nil {
			return
		}
		close(p.buffer)
		<-p.done
	})
}
