// Package httptransport assembles the public HTTP surface: the shared
// middleware chain, the per-module handlers and the operator endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	platformmetrics "greatglobal/internal/platform/metrics"
	"greatglobal/pkg/platform/middleware/admin"
	"greatglobal/pkg/platform/middleware/auth"
	"greatglobal/pkg/platform/middleware/device"
	"greatglobal/pkg/platform/middleware/metadata"
	"greatglobal/pkg/platform/middleware/ratelimit"
	"greatglobal/pkg/platform/middleware/request"
	"greatglobal/pkg/platform/middleware/requesttime"
)

const requestTimeout = 30 * time.Second

// Module is a domain handler that mounts its own routes.
type Module interface {
	Register(r chi.Router)
}

// Deps is everything the router needs. Optional fields may be left nil.
type Deps struct {
	Logger         *slog.Logger
	Callers        auth.CallerValidator
	Modules        []Module
	Journal        Journal
	Health         []HealthCheck
	HTTPMetrics    *platformmetrics.HTTP
	MetricsHandler http.Handler
	RateLimiter    *ratelimit.Middleware
	AllowedOrigins []string
	OpsAdminToken  string
}

// NewRouter wires every public endpoint. Module routes require a caller token;
// /healthz and /metrics are open and /ops is guarded by the admin token.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Recover(logger))
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(device.Middleware)
	r.Use(request.Logger(logger))
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", request.HeaderRequestID},
		ExposedHeaders:   []string{request.HeaderRequestID, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/healthz", healthHandler(deps.Health, logger))
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	if deps.Journal != nil {
		r.Route("/ops", func(r chi.Router) {
			r.Use(admin.RequireAdminToken(deps.OpsAdminToken, logger))
			newOpsHandler(deps.Journal, logger).Register(r)
		})
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireCaller(deps.Callers, logger))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.RateLimit)
		}
		for _, m := range deps.Modules {
			m.Register(r)
		}
	})

	return r
}
