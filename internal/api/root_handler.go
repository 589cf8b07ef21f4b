package api

import (
	"net/http"

	"github.com/colis-app/colis-api/internal/api/shared"
)

// RootHandler serves the discovery and health endpoints.
type RootHandler struct {
	documentationRoute string
}

// NewRootHandler creates a RootHandler pointing clients at documentationRoute.
func NewRootHandler(documentationRoute string) *RootHandler {
	return &RootHandler{documentationRoute: documentationRoute}
}

// Discover handles GET / with the absolute URL of the API documentation.
func (h *RootHandler) Discover(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded == "http" || forwarded == "https" {
		scheme = forwarded
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		DocumentationURL: scheme + "://" + r.Host + h.documentationRoute,
	})
}

// Health handles GET /health.
func (h *RootHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
