// Package auth verifies bearer tokens and makes access decisions.
//
// The JWTService signs and validates HS256 access tokens carrying the user ID
// and role. IdentityResolver builds a domain.Identity from a credential and
// consults the optional RevocationList. Authorize and RequireRole are the
// pure access checks run before any store is touched.
package auth
