package audit

import (
	"context"

	"github.com/google/uuid"

	"greatglobal/pkg/domain"
)

// Store is the append-only event journal.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByAccount(ctx context.Context, account domain.Account) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

// Outbox is implemented by journals that track which entries were relayed to a sink.
type Outbox interface {
	Unpublished(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}
