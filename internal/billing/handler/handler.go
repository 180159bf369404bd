package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"greatglobal/internal/billing/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

// Service defines the interface for subscription billing operations.
type Service interface {
	RegisterCustomer(ctx context.Context, caller domain.Account) (*models.CustomerAccount, error)
	AddBalance(ctx context.Context, caller domain.Account, amount, value domain.Amount) (*models.CustomerAccount, error)
	GetCustomerBalance(ctx context.Context, caller domain.Account) (domain.Amount, error)
	Customer(ctx context.Context, caller, customer domain.Account) (*models.CustomerAccount, error)
	ApproveInsurance(ctx context.Context, caller, customer domain.Account, policyID domain.PolicyID, payAmount domain.Amount, payDate time.Time) (models.Subscription, error)
	UpdatePayDate(ctx context.Context, caller, customer domain.Account, id domain.SubscriptionID, payDate time.Time) error
	ChkInsurancePayDate(ctx context.Context, caller, customer domain.Account, id domain.SubscriptionID) (time.Time, error)
	UpdateAutoPay(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (bool, error)
	ChkAutoPayStatus(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (bool, error)
	CancelInsurance(ctx context.Context, caller domain.Account, id domain.SubscriptionID) error
	ChkCancelInsuranceStatus(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (bool, error)
	ManualPay(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (models.Receipt, error)
	ChkManualPayInsurance(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (domain.Amount, time.Time, error)
	WithdrawMoney(ctx context.Context, caller domain.Account, amount domain.Amount) (models.Treasury, error)
	ViewTotalMoney(ctx context.Context, caller domain.Account) (models.Treasury, error)
	AddAdmin(ctx context.Context, caller, address domain.Account) error
	Admins(ctx context.Context, caller domain.Account) ([]domain.Account, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts billing endpoints on the router. Routes under /subscriptions
// act on the caller's own subscriptions.
func (h *Handler) Register(r chi.Router) {
	r.Route("/billing", func(r chi.Router) {
		r.Post("/customers", h.HandleRegisterCustomer)
		r.Get("/customers/me", h.HandleMe)
		r.Get("/customers/me/balance", h.HandleBalance)
		r.Post("/customers/me/deposits", h.HandleDeposit)
		r.Get("/customers/{account}", h.HandleCustomer)
		r.Post("/customers/{account}/subscriptions", h.HandleApproveInsurance)
		r.Get("/customers/{account}/subscriptions/{id}/pay-date", h.HandleGetPayDate)
		r.Put("/customers/{account}/subscriptions/{id}/pay-date", h.HandleUpdatePayDate)

		r.Get("/subscriptions/{id}/autopay", h.HandleAutoPayStatus)
		r.Post("/subscriptions/{id}/autopay", h.HandleToggleAutoPay)
		r.Get("/subscriptions/{id}/cancellation", h.HandleCancelStatus)
		r.Post("/subscriptions/{id}/cancellation", h.HandleCancel)
		r.Get("/subscriptions/{id}/due", h.HandleDue)
		r.Post("/subscriptions/{id}/payments", h.HandleManualPay)

		r.Get("/treasury", h.HandleTreasury)
		r.Post("/treasury/withdrawals", h.HandleWithdraw)
		r.Get("/admins", h.HandleListAdmins)
		r.Post("/admins", h.HandleAddAdmin)
	})
}

// HandleRegisterCustomer handles POST /billing/customers.
func (h *Handler) HandleRegisterCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	c, err := h.service.RegisterCustomer(ctx, caller)
	if err != nil {
		h.fail(ctx, w, "customer registration failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCustomer(c))
}

// HandleMe handles GET /billing/customers/me.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	h.writeCustomer(w, r, caller, caller)
}

// HandleCustomer handles GET /billing/customers/{account}.
func (h *Handler) HandleCustomer(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	customer, ok := httputil.PathAccount(w, chi.URLParam(r, "account"))
	if !ok {
		return
	}
	h.writeCustomer(w, r, caller, customer)
}

func (h *Handler) writeCustomer(w http.ResponseWriter, r *http.Request, caller, customer domain.Account) {
	c, err := h.service.Customer(r.Context(), caller, customer)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCustomer(c))
}

// HandleBalance handles GET /billing/customers/me/balance.
func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	balance, err := h.service.GetCustomerBalance(r.Context(), caller)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, BalanceResponse{Account: caller, Balance: balance})
}

// HandleDeposit handles POST /billing/customers/me/deposits.
func (h *Handler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DepositRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	c, err := h.service.AddBalance(ctx, caller, req.parsedAmount, req.parsedValue)
	if err != nil {
		h.fail(ctx, w, "deposit failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, BalanceResponse{Account: caller, Balance: c.Balance})
}

// HandleApproveInsurance handles POST /billing/customers/{account}/subscriptions.
func (h *Handler) HandleApproveInsurance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	customer, ok := httputil.PathAccount(w, chi.URLParam(r, "account"))
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ApproveInsuranceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	sub, err := h.service.ApproveInsurance(ctx, caller, customer, req.PolicyID, req.parsedPayAmount, req.payDate())
	if err != nil {
		h.fail(ctx, w, "insurance approval failed", caller, err)
		return
	}
	h.logger.InfoContext(ctx, "insurance approved",
		"request_id", requestID,
		"account", customer,
		"subscription_id", sub.ID,
		"policy_id", sub.PolicyID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromSubscription(&sub))
}

// HandleGetPayDate handles GET /billing/customers/{account}/subscriptions/{id}/pay-date.
func (h *Handler) HandleGetPayDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	customer, id, ok := subscriptionRef(w, r)
	if !ok {
		return
	}
	payDate, err := h.service.ChkInsurancePayDate(ctx, caller, customer, id)
	if err != nil {
		h.fail(ctx, w, "pay date lookup failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PayDateResponse{PayDate: payDate.Unix()})
}

// HandleUpdatePayDate handles PUT /billing/customers/{account}/subscriptions/{id}/pay-date.
func (h *Handler) HandleUpdatePayDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	customer, id, ok := subscriptionRef(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PayDateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.service.UpdatePayDate(ctx, caller, customer, id, time.Unix(req.PayDate, 0).UTC()); err != nil {
		h.fail(ctx, w, "pay date update failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PayDateResponse{PayDate: req.PayDate})
}

// HandleAutoPayStatus handles GET /billing/subscriptions/{id}/autopay.
func (h *Handler) HandleAutoPayStatus(w http.ResponseWriter, r *http.Request) {
	h.ownFlag(w, r, h.service.ChkAutoPayStatus, func(v bool) any { return AutoPayResponse{AutoPay: v} })
}

// HandleToggleAutoPay handles POST /billing/subscriptions/{id}/autopay.
func (h *Handler) HandleToggleAutoPay(w http.ResponseWriter, r *http.Request) {
	h.ownFlag(w, r, h.service.UpdateAutoPay, func(v bool) any { return AutoPayResponse{AutoPay: v} })
}

// HandleCancelStatus handles GET /billing/subscriptions/{id}/cancellation.
func (h *Handler) HandleCancelStatus(w http.ResponseWriter, r *http.Request) {
	h.ownFlag(w, r, h.service.ChkCancelInsuranceStatus, func(v bool) any { return CancelledResponse{Cancelled: v} })
}

// HandleCancel handles POST /billing/subscriptions/{id}/cancellation.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	cancel := func(ctx context.Context, caller domain.Account, id domain.SubscriptionID) (bool, error) {
		if err := h.service.CancelInsurance(ctx, caller, id); err != nil {
			return false, err
		}
		return true, nil
	}
	h.ownFlag(w, r, cancel, func(v bool) any { return CancelledResponse{Cancelled: v} })
}

func (h *Handler) ownFlag(w http.ResponseWriter, r *http.Request, call func(context.Context, domain.Account, domain.SubscriptionID) (bool, error), render func(bool) any) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathSubscriptionID(w, r)
	if !ok {
		return
	}
	v, err := call(ctx, caller, id)
	if err != nil {
		h.fail(ctx, w, "subscription request failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, render(v))
}

// HandleDue handles GET /billing/subscriptions/{id}/due.
func (h *Handler) HandleDue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathSubscriptionID(w, r)
	if !ok {
		return
	}
	amount, payDate, err := h.service.ChkManualPayInsurance(ctx, caller, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, DueResponse{AmountDue: amount, PayDate: payDate.Unix()})
}

// HandleManualPay handles POST /billing/subscriptions/{id}/payments.
func (h *Handler) HandleManualPay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathSubscriptionID(w, r)
	if !ok {
		return
	}
	receipt, err := h.service.ManualPay(ctx, caller, id)
	if err != nil {
		h.fail(ctx, w, "premium payment failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromReceipt(receipt))
}

// HandleTreasury handles GET /billing/treasury.
func (h *Handler) HandleTreasury(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	t, err := h.service.ViewTotalMoney(r.Context(), caller)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromTreasury(t))
}

// HandleWithdraw handles POST /billing/treasury/withdrawals.
func (h *Handler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[WithdrawRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	t, err := h.service.WithdrawMoney(ctx, caller, req.parsedAmount)
	if err != nil {
		h.fail(ctx, w, "treasury withdrawal failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromTreasury(t))
}

// HandleListAdmins handles GET /billing/admins.
func (h *Handler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	admins, err := h.service.Admins(r.Context(), caller)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if admins == nil {
		admins = []domain.Account{}
	}
	httputil.WriteJSON(w, http.StatusOK, AdminsResponse{Admins: admins})
}

// HandleAddAdmin handles POST /billing/admins.
func (h *Handler) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AdminRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.service.AddAdmin(ctx, caller, req.parsedAddress); err != nil {
		h.fail(ctx, w, "billing admin change failed", caller, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathSubscriptionID(w http.ResponseWriter, r *http.Request) (domain.SubscriptionID, bool) {
	id, err := domain.ParseSubscriptionID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return id, true
}

func subscriptionRef(w http.ResponseWriter, r *http.Request) (domain.Account, domain.SubscriptionID, bool) {
	customer, ok := httputil.PathAccount(w, chi.URLParam(r, "account"))
	if !ok {
		return "", 0, false
	}
	id, ok := pathSubscriptionID(w, r)
	if !ok {
		return "", 0, false
	}
	return customer, id, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, caller domain.Account, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"account", caller,
		"error", err,
	)
	httputil.WriteError(w, err)
}
