package tx

import (
	"context"
	"sync"
	"time"

	dErrors "greatglobal/pkg/domain-errors"
)

// DefaultTimeout bounds a transaction when the caller's context has no deadline.
const DefaultTimeout = 5 * time.Second

// MemoryTx serializes every command of one component behind a single mutex.
// In-memory stores apply writes directly, so a command that fails after a
// partial write must roll back through its own validate-then-mutate ordering.
type MemoryTx struct {
	mu      sync.Mutex
	timeout time.Duration
}

// NewMemoryTx returns a MemoryTx. A zero timeout selects DefaultTimeout.
func NewMemoryTx(timeout time.Duration) *MemoryTx {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &MemoryTx{timeout: timeout}
}

func (t *MemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Check again after acquiring lock
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx)
}
