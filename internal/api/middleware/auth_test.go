package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/colis-app/colis-api/internal/api/middleware"
	"github.com/colis-app/colis-api/internal/api/shared"
	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/mocks"
	"github.com/colis-app/colis-api/internal/service/auth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler notes whether it ran and which identity it saw.
type recordingHandler struct {
	called   bool
	identity *domain.Identity
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.identity = shared.IdentityFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	identity := &domain.Identity{
		UserID:    uuid.New(),
		Role:      domain.RoleCustomer,
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name       string
		header     string
		resolveErr error
		wantStatus int
		wantCalled bool
	}{
		{"valid token", "Bearer good", nil, http.StatusOK, true},
		{"lowercase scheme", "bearer good", nil, http.StatusOK, true},
		{"missing header", "", nil, http.StatusUnauthorized, false},
		{"wrong scheme", "Basic good", nil, http.StatusUnauthorized, false},
		{"no token", "Bearer ", nil, http.StatusUnauthorized, false},
		{"extra parts", "Bearer good extra", nil, http.StatusUnauthorized, false},
		{"unknown token", "Bearer bad", nil, http.StatusUnauthorized, false},
		{"expired token", "Bearer good", auth.ErrExpiredToken, http.StatusUnauthorized, false},
		{"revocation lookup failure", "Bearer good", errors.New("redis down"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := &mocks.MockIdentityResolver{
				Identities: map[string]*domain.Identity{"good": identity},
				Err:        tt.resolveErr,
			}
			next := &recordingHandler{}
			handler := middleware.NewAuthMiddleware(resolver).Authenticate(next)

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, next.called)
			if tt.wantCalled {
				assert.Equal(t, identity, next.identity)
			}
		})
	}
}

func TestAuthenticateExpiredMessage(t *testing.T) {
	t.Parallel()

	resolver := &mocks.MockIdentityResolver{Err: auth.ErrExpiredToken}
	handler := middleware.NewAuthMiddleware(resolver).Authenticate(&recordingHandler{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

// guardedRouter mounts next behind RequireOwner on /users/{id}.
func guardedRouter(next http.Handler) http.Handler {
	r := chi.NewRouter()
	r.With(middleware.RequireOwner("id")).Delete("/users/{id}/account", next.ServeHTTP)
	return r
}

func serveAs(t *testing.T, h http.Handler, identity *domain.Identity, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/users/"+target+"/account", nil)
	if identity != nil {
		req = req.WithContext(shared.WithIdentity(req.Context(), identity))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireOwner(t *testing.T) {
	t.Parallel()

	u1 := &domain.Identity{UserID: uuid.New(), Role: domain.RoleCustomer}
	u2 := uuid.New()
	admin := &domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}

	tests := []struct {
		name       string
		identity   *domain.Identity
		target     string
		wantStatus int
		wantCalled bool
	}{
		{"owner", u1, u1.UserID.String(), http.StatusOK, true},
		{"other user", u1, u2.String(), http.StatusForbidden, false},
		{"carrier on other user", &domain.Identity{UserID: uuid.New(), Role: domain.RoleCarrier}, u2.String(), http.StatusForbidden, false},
		{"admin", admin, u2.String(), http.StatusOK, true},
		{"malformed id", admin, "not-a-uuid", http.StatusBadRequest, false},
		{"anonymous", nil, u2.String(), http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			next := &recordingHandler{}
			rec := serveAs(t, guardedRouter(next), tt.identity, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, next.called)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		role       domain.Role
		wantStatus int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleCustomer, http.StatusForbidden},
		{domain.RoleCarrier, http.StatusForbidden},
	} {
		next := &recordingHandler{}
		handler := middleware.RequireRole(domain.RoleAdmin)(next)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(shared.WithIdentity(req.Context(), &domain.Identity{UserID: uuid.New(), Role: tc.role}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, tc.wantStatus, rec.Code, "role %s", tc.role)
		assert.Equal(t, tc.wantStatus == http.StatusOK, next.called)
	}
}
