// Package device derives a human-readable device label from the User-Agent.
// The label is recorded on sessions so an account can see where it signed in.
package device

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"greatglobal/pkg/requestcontext"
)

const unknownDevice = "Unknown Device"

// ParseUserAgent renders "<browser> on <platform>" for a User-Agent string.
func ParseUserAgent(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return unknownDevice
	}

	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	platform := ua.OS()
	if ua.Mobile() && ua.Platform() != "" {
		platform = ua.Platform()
	}
	if platform == "" {
		platform = ua.Platform()
	}
	if platform == "" {
		platform = "Unknown OS"
	}

	return strings.TrimSpace(strings.Join(strings.Fields(browser+" on "+platform), " "))
}

// Middleware labels the request's device for downstream session bookkeeping.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithDevice(r.Context(), ParseUserAgent(r.Header.Get("User-Agent")))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
