package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"greatglobal/pkg/domain"
)

func TestAccessorsReturnZeroValuesWhenUnset(t *testing.T) {
	ctx := context.Background()
	assert.True(t, Caller(ctx).IsNil())
	assert.Empty(t, Device(ctx))
	assert.Empty(t, ClientIP(ctx))
	assert.Empty(t, UserAgent(ctx))
	assert.Empty(t, RequestID(ctx))
	assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
}

func TestAccessorsRoundTrip(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	acct := domain.Account("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")

	ctx := WithCaller(context.Background(), acct)
	ctx = WithDevice(ctx, "Chrome on Linux")
	ctx = WithClientMetadata(ctx, "10.0.0.1", "Mozilla/5.0")
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTime(ctx, fixed)

	assert.Equal(t, acct, Caller(ctx))
	assert.Equal(t, "Chrome on Linux", Device(ctx))
	assert.Equal(t, "10.0.0.1", ClientIP(ctx))
	assert.Equal(t, "Mozilla/5.0", UserAgent(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, fixed, Now(ctx))
}
