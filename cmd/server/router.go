package main

import (
	"log/slog"
	"net/http"

	"github.com/colis-app/colis-api/internal/api"
	apiMiddleware "github.com/colis-app/colis-api/internal/api/middleware"
	"github.com/colis-app/colis-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// userIDPattern restricts {id} to hex digits and dashes so that public paths
// such as /users/login are never matched by the authenticated subtree. A
// segment in that alphabet that is not a valid uuid reaches RequireOwner and
// is rejected there with 400.
const userIDPattern = "{id:[0-9a-fA-F-]+}"

// corsMaxAgeSeconds is how long browsers may cache a preflight response.
const corsMaxAgeSeconds = 300

// routeHandlers groups everything the router mounts.
type routeHandlers struct {
	root     *api.RootHandler
	users    *api.UserHandler
	auth     *api.AuthHandler
	accounts *api.AccountHandler
	carriers *api.CarrierHandler
	authn    *apiMiddleware.AuthMiddleware
}

// newRouter registers the routes. Authentication and the guards run as
// middleware, so a denied request never reaches a handler or a store.
func newRouter(logger *slog.Logger, allowedOrigins []string, h routeHandlers) http.Handler {
	r := chi.NewRouter()

	// CORS runs first so preflight requests are answered before routing
	// and authentication.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         corsMaxAgeSeconds,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(logger))

	r.Get("/", h.root.Discover)
	r.Get("/health", h.root.Health)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.users.Register)
		r.Post("/login", h.auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authn.Authenticate)

			r.Post("/logout", h.auth.Logout)
			r.With(apiMiddleware.RequireRole(domain.RoleAdmin)).Get("/", h.users.List)

			r.Route("/"+userIDPattern, func(r chi.Router) {
				r.Use(apiMiddleware.RequireOwner("id"))

				r.Get("/", h.users.Get)
				r.Patch("/", h.users.Update)
				r.Delete("/", h.users.Delete)

				r.Get("/account", h.accounts.Get)
				r.Put("/account", h.accounts.Update)
				r.Delete("/account", h.accounts.Delete)

				r.Get("/carrier", h.carriers.Get)
				r.Put("/carrier", h.carriers.Update)
				r.Delete("/carrier", h.carriers.Delete)
			})
		})
	})

	return r
}
