package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"greatglobal/internal/platform/eventsink"
	"greatglobal/pkg/domain"
	dErrors "greatglobal/pkg/domain-errors"
	audit "greatglobal/pkg/platform/audit"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// Journal is the read side of the event journal exposed to operators.
type Journal interface {
	ListByAccount(ctx context.Context, account domain.Account) ([]audit.Event, error)
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

type opsHandler struct {
	journal Journal
	logger  *slog.Logger
}

func newOpsHandler(journal Journal, logger *slog.Logger) *opsHandler {
	return &opsHandler{journal: journal, logger: logger}
}

func (h *opsHandler) Register(r chi.Router) {
	r.Get("/events", h.handleRecent)
	r.Get("/events/{account}", h.handleByAccount)
}

type eventsResponse struct {
	Events []eventsink.Envelope `json:"events"`
}

func toEventsResponse(events []audit.Event) eventsResponse {
	out := eventsResponse{Events: make([]eventsink.Envelope, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, eventsink.NewEnvelope(e))
	}
	return out
}

func (h *opsHandler) handleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	events, err := h.journal.ListRecent(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "failed to list journal events", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEventsResponse(events))
}

func (h *opsHandler) handleByAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account, ok := httputil.PathAccount(w, chi.URLParam(r, "account"))
	if !ok {
		return
	}
	events, err := h.journal.ListByAccount(ctx, account)
	if err != nil {
		h.fail(ctx, w, "failed to list account journal", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEventsResponse(events))
}

func (h *opsHandler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, msg))
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultEventLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer")
	}
	return min(n, maxEventLimit), nil
}
