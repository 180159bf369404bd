package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"greatglobal/internal/policy/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

// Service defines the interface for policy catalog operations.
type Service interface {
	CreatePolicy(ctx context.Context, caller domain.Account, in models.PolicyInput) (*models.Policy, error)
	UpdatePolicy(ctx context.Context, caller domain.Account, id domain.PolicyID, in models.PolicyInput) (*models.Policy, error)
	GetPolicy(ctx context.Context, id domain.PolicyID) (*models.Policy, error)
	GetAllActivePolicies(ctx context.Context) ([]*models.Policy, error)
	GetAllArchivedPolicies(ctx context.Context) ([]*models.Policy, error)
	GetPolicyAvailability(ctx context.Context, id domain.PolicyID) (bool, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts policy endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/policies", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/active", h.HandleListActive)
		r.Get("/archived", h.HandleListArchived)
		r.Get("/{id}", h.HandleGet)
		r.Put("/{id}", h.HandleUpdate)
		r.Get("/{id}/availability", h.HandleAvailability)
	})
}

// HandleCreate handles POST /policies.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PolicyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	p, err := h.service.CreatePolicy(ctx, caller, req.ToInput())
	if err != nil {
		h.logger.WarnContext(ctx, "policy creation failed",
			"request_id", requestID,
			"account", caller,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.logger.InfoContext(ctx, "policy created",
		"request_id", requestID,
		"policy_id", p.ID,
		"active", p.Active,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromPolicy(p))
}

// HandleUpdate handles PUT /policies/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	id, err := domain.ParsePolicyID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[PolicyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	p, err := h.service.UpdatePolicy(ctx, caller, id, req.ToInput())
	if err != nil {
		h.logger.WarnContext(ctx, "policy update failed",
			"request_id", requestID,
			"policy_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicy(p))
}

// HandleGet handles GET /policies/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParsePolicyID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.service.GetPolicy(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicy(p))
}

func (h *Handler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, h.service.GetAllActivePolicies)
}

func (h *Handler) HandleListArchived(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, h.service.GetAllArchivedPolicies)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]*models.Policy, error)) {
	ctx := r.Context()
	policies, err := list(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "policy listing failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPolicies(policies))
}

// HandleAvailability handles GET /policies/{id}/availability.
func (h *Handler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParsePolicyID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	available, err := h.service.GetPolicyAvailability(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AvailabilityResponse{ID: id, Available: available})
}
