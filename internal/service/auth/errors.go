package auth

import "errors"

// Authentication failures. All of them surface as 401.
var (
	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken covers malformed tokens, bad signatures, wrong token
	// types, unknown roles and revoked tokens.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials is returned by login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authorization failures. Both surface as 403.
var (
	// ErrNotOwner indicates the caller is neither the owner of the target
	// resource nor an admin.
	ErrNotOwner = errors.New("caller does not own the resource")

	// ErrInsufficientRole indicates the caller lacks the role an endpoint requires.
	ErrInsufficientRole = errors.New("insufficient role")
)
