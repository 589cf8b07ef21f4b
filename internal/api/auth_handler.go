package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/colis-app/colis-api/internal/api/shared"
	"github.com/colis-app/colis-api/internal/platform/logger"
	"github.com/colis-app/colis-api/internal/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("user logged in", slog.String("user_id", result.UserID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		UserID:    result.UserID,
		Role:      result.Role,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout handles POST /users/logout by revoking the caller's token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), shared.IdentityFromContext(r.Context())); err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
