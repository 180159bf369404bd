package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	dErrors "greatglobal/pkg/domain-errors"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

// HeaderName carries the operator token.
const HeaderName = "X-Admin-Token"

func tokenMatches(expected, got string) bool {
	return expected != "" && subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}

// RequireAdminToken guards operator endpoints (journal inspection) with a static token.
// An empty expected token disables the endpoints entirely.
func RequireAdminToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tokenMatches(expectedToken, r.Header.Get(HeaderName)) {
				ctx := r.Context()
				logger.WarnContext(ctx, "ops token rejected",
					"request_id", requestcontext.RequestID(ctx),
					"path", r.URL.Path,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin token required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
