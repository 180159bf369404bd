package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"greatglobal/internal/packages/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

// Service defines the interface for package subscription operations.
type Service interface {
	SubscribeToPackage(ctx context.Context, caller domain.Account, packageID domain.PolicyID) (*models.PackageSubscription, error)
	ApproveSubscription(ctx context.Context, caller domain.Account, email string, packageID domain.PolicyID) (*models.PackageSubscription, error)
	RejectSubscription(ctx context.Context, caller domain.Account, email string, packageID domain.PolicyID) (*models.PackageSubscription, error)
	CancelSubscription(ctx context.Context, caller domain.Account, packageID domain.PolicyID) (*models.PackageSubscription, error)
	ViewPackages(ctx context.Context, caller domain.Account) (models.Partitions, error)
	ViewAllSubscriptions(ctx context.Context, caller domain.Account) (models.Partitions, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts package endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/packages", func(r chi.Router) {
		r.Get("/mine", h.HandleViewPackages)
		r.Get("/subscriptions", h.HandleViewAll)
		r.Post("/{id}/subscribe", h.HandleSubscribe)
		r.Post("/{id}/cancel", h.HandleCancel)
		r.Post("/{id}/approve", h.HandleApprove)
		r.Post("/{id}/reject", h.HandleReject)
	})
}

// HandleSubscribe handles POST /packages/{id}/subscribe.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	h.own(w, r, "package request failed", h.service.SubscribeToPackage, http.StatusCreated)
}

// HandleCancel handles POST /packages/{id}/cancel.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.own(w, r, "package cancellation failed", h.service.CancelSubscription, http.StatusOK)
}

// HandleApprove handles POST /packages/{id}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "package approval failed", h.service.ApproveSubscription)
}

// HandleReject handles POST /packages/{id}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "package rejection failed", h.service.RejectSubscription)
}

func (h *Handler) own(w http.ResponseWriter, r *http.Request, msg string, call func(context.Context, domain.Account, domain.PolicyID) (*models.PackageSubscription, error), status int) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathPackageID(w, r)
	if !ok {
		return
	}
	sub, err := call(ctx, caller, id)
	if err != nil {
		h.fail(ctx, w, msg, caller, err)
		return
	}
	httputil.WriteJSON(w, status, FromSubscription(sub))
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, msg string, call func(context.Context, domain.Account, string, domain.PolicyID) (*models.PackageSubscription, error)) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathPackageID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DecisionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	sub, err := call(ctx, caller, req.Email, id)
	if err != nil {
		h.fail(ctx, w, msg, caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSubscription(sub))
}

// HandleViewPackages handles GET /packages/mine.
func (h *Handler) HandleViewPackages(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, h.service.ViewPackages)
}

// HandleViewAll handles GET /packages/subscriptions.
func (h *Handler) HandleViewAll(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, h.service.ViewAllSubscriptions)
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request, call func(context.Context, domain.Account) (models.Partitions, error)) {
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	parts, err := call(r.Context(), caller)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPartitions(parts))
}

func pathPackageID(w http.ResponseWriter, r *http.Request) (domain.PolicyID, bool) {
	id, err := domain.ParsePolicyID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, caller domain.Account, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"account", caller,
		"error", err,
	)
	httputil.WriteError(w, err)
}
