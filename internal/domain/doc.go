// Package domain contains the core business entities of the delivery platform:
// users, their accounts and carrier profiles, the partial-update patches applied
// to them, and the request-scoped Identity of an authenticated caller. It is
// independent of storage and transport.
package domain
