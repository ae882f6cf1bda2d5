package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

// LoginHandlers issues and refreshes JWT pairs for admin accounts.
type LoginHandlers struct {
	auth *services.AuthService
}

// NewLoginHandlers constructs the login handlers.
func NewLoginHandlers(auth *services.AuthService) *LoginHandlers {
	return &LoginHandlers{auth: auth}
}

// Routes wires the /login endpoints onto the provided router.
func (h *LoginHandlers) Routes(r chi.Router) {
	r.Post("/", h.login)
	r.Post("/refresh", h.refresh)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *LoginHandlers) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	pair, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCredentialsRequired):
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrEmailNotAllowed):
			httpx.WriteError(ctx, w, httpx.NewError("invalid_credentials", "invalid email or password", http.StatusUnauthorized))
		default:
			writeStoreError(ctx, w, err)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *LoginHandlers) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	pair, err := h.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRefreshTokenRequired):
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		case errors.Is(err, services.ErrInvalidRefreshToken):
			httpx.WriteError(ctx, w, httpx.NewError("invalid_token", "refresh token is invalid or expired", http.StatusUnauthorized))
		default:
			writeStoreError(ctx, w, err)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}
