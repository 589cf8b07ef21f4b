// Package middleware holds the HTTP middleware of the API: request tracing,
// bearer token authentication and the ownership and role guards that run
// before any handler touches storage.
package middleware
