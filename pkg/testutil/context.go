package testutil

import (
	"net/http"
	"time"

	"greatglobal/pkg/domain"
	"greatglobal/pkg/requestcontext"
)

// WithCaller adds the calling account to the request context, as the caller
// token middleware would for an authenticated request.
func WithCaller(req *http.Request, caller domain.Account) *http.Request {
	return req.WithContext(requestcontext.WithCaller(req.Context(), caller))
}

// WithCallerAt is WithCaller with a pinned request time.
func WithCallerAt(req *http.Request, caller domain.Account, now time.Time) *http.Request {
	ctx := requestcontext.WithCaller(req.Context(), caller)
	return req.WithContext(requestcontext.WithTime(ctx, now))
}
