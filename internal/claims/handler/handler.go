package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"greatglobal/internal/claims/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

// Service defines the interface for claim ledger operations.
type Service interface {
	AddClaim(ctx context.Context, caller domain.Account, amount domain.Amount) (*models.Claim, error)
	ApproveClaim(ctx context.Context, caller, user domain.Account, id domain.ClaimID, approve bool) (*models.Claim, error)
	Fund(ctx context.Context, caller domain.Account, amount domain.Amount) (models.FundingPool, error)
	DisburseClaim(ctx context.Context, caller, user domain.Account, id domain.ClaimID) (*models.Claim, error)
	GetUnprocessedClaims(ctx context.Context, caller, user domain.Account) ([]domain.ClaimID, []domain.Amount, error)
	GetAllUnprocessedClaims(ctx context.Context, caller domain.Account) ([]models.PendingClaim, error)
	GetPool(ctx context.Context) (models.FundingPool, error)
	GetClaim(ctx context.Context, user domain.Account, id domain.ClaimID) (*models.Claim, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts claim endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/claims", func(r chi.Router) {
		r.Post("/", h.HandleAddClaim)
		r.Get("/pending", h.HandleAllPending)
		r.Get("/pool", h.HandlePool)
		r.Post("/pool/fund", h.HandleFund)
		r.Get("/{account}/pending", h.HandlePending)
		r.Get("/{account}/{id}", h.HandleGetClaim)
		r.Post("/{account}/{id}/decision", h.HandleDecision)
		r.Post("/{account}/{id}/disburse", h.HandleDisburse)
	})
}

// HandleAddClaim handles POST /claims.
func (h *Handler) HandleAddClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AmountRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c, err := h.service.AddClaim(ctx, caller, req.ParsedAmount())
	if err != nil {
		h.fail(ctx, w, "claim submission failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, FromClaim(c))
}

// HandleDecision handles POST /claims/{account}/{id}/decision.
func (h *Handler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	user, id, ok := claimRef(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DecisionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c, err := h.service.ApproveClaim(ctx, caller, user, id, *req.Approve)
	if err != nil {
		h.fail(ctx, w, "claim decision failed", caller, err)
		return
	}
	h.logger.InfoContext(ctx, "claim decided",
		"request_id", requestID,
		"account", user,
		"claim_id", id,
		"status", c.Status,
	)
	httputil.WriteJSON(w, http.StatusOK, FromClaim(c))
}

// HandleDisburse handles POST /claims/{account}/{id}/disburse.
func (h *Handler) HandleDisburse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	user, id, ok := claimRef(w, r)
	if !ok {
		return
	}
	c, err := h.service.DisburseClaim(ctx, caller, user, id)
	if err != nil {
		h.fail(ctx, w, "claim payout failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromClaim(c))
}

// HandleFund handles POST /claims/pool/fund.
func (h *Handler) HandleFund(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AmountRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	pool, err := h.service.Fund(ctx, caller, req.ParsedAmount())
	if err != nil {
		h.fail(ctx, w, "pool funding failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPool(pool))
}

// HandlePool handles GET /claims/pool.
func (h *Handler) HandlePool(w http.ResponseWriter, r *http.Request) {
	pool, err := h.service.GetPool(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPool(pool))
}

// HandlePending handles GET /claims/{account}/pending.
func (h *Handler) HandlePending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	user, ok := httputil.PathAccount(w, chi.URLParam(r, "account"))
	if !ok {
		return
	}
	ids, amounts, err := h.service.GetUnprocessedClaims(ctx, caller, user)
	if err != nil {
		h.fail(ctx, w, "pending claims lookup failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, UnprocessedResponse{IDs: ids, Amounts: amounts})
}

// HandleAllPending handles GET /claims/pending.
func (h *Handler) HandleAllPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	pending, err := h.service.GetAllUnprocessedClaims(ctx, caller)
	if err != nil {
		h.fail(ctx, w, "pending claims lookup failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromPending(pending))
}

// HandleGetClaim handles GET /claims/{account}/{id}.
func (h *Handler) HandleGetClaim(w http.ResponseWriter, r *http.Request) {
	user, id, ok := claimRef(w, r)
	if !ok {
		return
	}
	c, err := h.service.GetClaim(r.Context(), user, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromClaim(c))
}

func claimRef(w http.ResponseWriter, r *http.Request) (domain.Account, domain.ClaimID, bool) {
	user, ok := httputil.PathAccount(w, chi.URLParam(r, "account"))
	if !ok {
		return "", 0, false
	}
	id, err := domain.ParseClaimID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", 0, false
	}
	return user, id, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, caller domain.Account, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"account", caller,
		"error", err,
	)
	httputil.WriteError(w, err)
}
