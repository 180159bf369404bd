package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"greatglobal/internal/identity/models"
	"greatglobal/pkg/domain"
	"greatglobal/pkg/platform/httputil"
	"greatglobal/pkg/requestcontext"
)

// Service defines the identity operations exposed over HTTP.
type Service interface {
	Register(ctx context.Context, caller domain.Account, req models.RegisterRequest) (*models.UserProfile, error)
	SignIn(ctx context.Context, caller domain.Account, identifier, password string) (bool, error)
	ResetPassword(ctx context.Context, caller domain.Account, identifier, newPassword string) error
	AdminSignIn(ctx context.Context, caller, address domain.Account) error
	LogoutUser(ctx context.Context, caller domain.Account) error
	LogoutAdmin(ctx context.Context, caller domain.Account) error
	AssignAdmin(ctx context.Context, caller, address domain.Account) error
	RemoveAdmin(ctx context.Context, caller, address domain.Account) error
	CurrentSession(ctx context.Context, account domain.Account) (domain.Role, error)
	IsAdmin(ctx context.Context, account domain.Account) (bool, error)
	Profile(ctx context.Context, account domain.Account) (*models.UserProfile, error)
	ListRegisteredAccounts(ctx context.Context) ([]domain.Account, error)
	Admins(ctx context.Context) (models.AdminSet, error)
}

// Handler serves the identity registry endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts identity endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/identity", func(r chi.Router) {
		r.Post("/register", h.HandleRegister)
		r.Post("/sign-in", h.HandleSignIn)
		r.Post("/reset-password", h.HandleResetPassword)
		r.Post("/logout", h.HandleLogoutUser)
		r.Get("/session", h.HandleSession)
		r.Get("/me", h.HandleProfile)
		r.Get("/users", h.HandleListUsers)

		r.Post("/admin/sign-in", h.HandleAdminSignIn)
		r.Post("/admin/logout", h.HandleLogoutAdmin)
		r.Get("/admins", h.HandleListAdmins)
		r.Get("/admins/{address}", h.HandleIsAdmin)
		r.Post("/admins", h.HandleAssignAdmin)
		r.Delete("/admins/{address}", h.HandleRemoveAdmin)
	})
}

// HandleRegister handles POST /identity/register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	profile, err := h.service.Register(ctx, caller, req.toModel())
	if err != nil {
		h.fail(ctx, w, "registration failed", caller, err)
		return
	}
	h.logger.InfoContext(ctx, "user registered",
		"request_id", requestID,
		"account", caller,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromProfile(profile))
}

// HandleSignIn handles POST /identity/sign-in.
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SignInRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	signedIn, err := h.service.SignIn(ctx, caller, req.Identifier, req.Password)
	if err != nil {
		h.fail(ctx, w, "sign-in failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SignInResponse{SignedIn: signedIn, Role: domain.RoleUser})
}

// HandleResetPassword handles POST /identity/reset-password.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ResetPasswordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.ResetPassword(ctx, caller, req.Identifier, req.NewPassword); err != nil {
		h.fail(ctx, w, "password reset failed", caller, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAdminSignIn handles POST /identity/admin/sign-in.
func (h *Handler) HandleAdminSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddressRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.AdminSignIn(ctx, caller, req.ParsedAddress()); err != nil {
		h.fail(ctx, w, "admin sign-in failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SignInResponse{SignedIn: true, Role: domain.RoleAdmin})
}

func (h *Handler) HandleLogoutUser(w http.ResponseWriter, r *http.Request) {
	h.handleLogout(w, r, h.service.LogoutUser)
}

func (h *Handler) HandleLogoutAdmin(w http.ResponseWriter, r *http.Request) {
	h.handleLogout(w, r, h.service.LogoutAdmin)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request, logout func(context.Context, domain.Account) error) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	if err := logout(ctx, caller); err != nil {
		h.fail(ctx, w, "logout failed", caller, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSession handles GET /identity/session for the caller.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	role, err := h.service.CurrentSession(ctx, caller)
	if err != nil {
		h.fail(ctx, w, "session lookup failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SessionResponse{Account: caller, Role: role})
}

// HandleProfile handles GET /identity/me.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	profile, err := h.service.Profile(ctx, caller)
	if err != nil {
		h.fail(ctx, w, "profile lookup failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromProfile(profile))
}

// HandleListUsers handles GET /identity/users.
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	accounts, err := h.service.ListRegisteredAccounts(ctx)
	if err != nil {
		h.fail(ctx, w, "user listing failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AccountsResponse{Accounts: nonNilAccounts(accounts)})
}

// HandleListAdmins handles GET /identity/admins.
func (h *Handler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	set, err := h.service.Admins(ctx)
	if err != nil {
		h.fail(ctx, w, "admin listing failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromAdminSet(set))
}

// HandleIsAdmin handles GET /identity/admins/{address}.
func (h *Handler) HandleIsAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	address, ok := httputil.PathAccount(w, chi.URLParam(r, "address"))
	if !ok {
		return
	}
	isAdmin, err := h.service.IsAdmin(ctx, address)
	if err != nil {
		h.fail(ctx, w, "admin lookup failed", caller, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, IsAdminResponse{Account: address, IsAdmin: isAdmin})
}

// HandleAssignAdmin handles POST /identity/admins.
func (h *Handler) HandleAssignAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddressRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.service.AssignAdmin(ctx, caller, req.ParsedAddress()); err != nil {
		h.fail(ctx, w, "admin assignment failed", caller, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemoveAdmin handles DELETE /identity/admins/{address}.
func (h *Handler) HandleRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := httputil.RequireCaller(w, r)
	if !ok {
		return
	}
	address, ok := httputil.PathAccount(w, chi.URLParam(r, "address"))
	if !ok {
		return
	}
	if err := h.service.RemoveAdmin(ctx, caller, address); err != nil {
		h.fail(ctx, w, "admin removal failed", caller, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, caller domain.Account, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"account", caller,
		"error", err,
	)
	httputil.WriteError(w, err)
}

func nonNilAccounts(accounts []domain.Account) []domain.Account {
	if accounts == nil {
		return []domain.Account{}
	}
	return accounts
}
