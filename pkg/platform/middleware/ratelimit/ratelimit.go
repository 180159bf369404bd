// Package ratelimit throttles commands per caller with token buckets.
package ratelimit

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

const defaultIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Middleware keeps one token bucket per caller account, falling back to the
// client IP for unauthenticated routes.
type Middleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
	logger   *slog.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled disables rate limiting entirely (for tests and demo mode).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithIdleTTL controls how long an idle bucket is kept before eviction.
func WithIdleTTL(ttl time.Duration) Option {
	return func(m *Middleware) {
		if ttl > 0 {
			m.idleTTL = ttl
		}
	}
}

func New(rps float64, burst int, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  defaultIdleTTL,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled || rps <= 0 {
		m.disabled = true
		logger.Info("rate limiting disabled")
	}
	return m
}

func (m *Middleware) limiterFor(key string, now time.Time) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range m.visitors {
		if now.Sub(v.lastSeen) > m.idleTTL {
			delete(m.visitors, k)
		}
	}

	v, ok := m.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.rps, m.burst)}
		m.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// RateLimit rejects requests once the caller's bucket is empty.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := requestcontext.Caller(ctx).String()
		if key == "" {
			key = "ip:" + requestcontext.ClientIP(ctx)
		}

		now := time.Now()
		limiter := m.limiterFor(key, now)
		reservation := limiter.ReserveN(now, 1)
		if !reservation.OK() {
			writeRateLimitExceeded(w, 1)
			return
		}
		if delay := reservation.DelayFrom(now); delay > 0 {
			reservation.CancelAt(now)
			retryAfter := int(math.Ceil(delay.Seconds()))
			m.logger.WarnContext(ctx, "rate limit exceeded",
				"key", key,
				"request_id", requestcontext.RequestID(ctx),
			)
			writeRateLimitExceeded(w, retryAfter)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.TokensAt(now))))
		next.ServeHTTP(w, r)
	})
}

func writeRateLimitExceeded(w http.ResponseWriter, retryAfter int) {
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"message":     "Too many requests. Please try again later.",
		"retry_after": retryAfter,
	})
}
