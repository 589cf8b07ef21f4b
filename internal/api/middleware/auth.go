package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/colis-app/colis-api/internal/api/shared"
	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/platform/logger"
	"github.com/colis-app/colis-api/internal/service/auth"
)

// IdentityResolver turns a bearer credential into the caller's identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*domain.Identity, error)
}

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	resolver IdentityResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// Authenticate resolves the bearer token from the Authorization header and
// adds the caller's identity to the request context. Requests without a
// valid token never reach next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		identity, err := m.resolver.Resolve(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				shared.RespondWithErrorAndLog(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
					err,
				)
			}
			return
		}

		logger.FromContext(r.Context()).Debug("request authenticated",
			slog.String("user_id", identity.UserID.String()),
			slog.String("role", string(identity.Role)))

		ctx := shared.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireOwner allows the request through only when the caller is the user
// named by the paramName route parameter or an admin. A malformed ID is
// rejected with 400 before any further processing.
func RequireOwner(paramName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			target, err := shared.PathUUID(r, paramName)
			if err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID")
				return
			}

			identity := shared.IdentityFromContext(r.Context())
			if err := auth.Authorize(identity, target); err != nil {
				respondDenied(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole allows the request through only for callers holding role.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := shared.IdentityFromContext(r.Context())
			if err := auth.RequireRole(identity, role); err != nil {
				respondDenied(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func respondDenied(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, auth.ErrMissingToken) {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, "You are not allowed to access this resource", err)
}
