package service

import (
	"fmt"

	"github.com/colis-app/colis-api/internal/domain"
)

// Service errors. Store and auth sentinels pass through wrapped, so callers
// keep matching them with errors.Is.
var (
	// ErrAdminRegistration is returned when a registration asks for the admin role.
	ErrAdminRegistration = fmt.Errorf("%w: admin accounts cannot be self-registered", domain.ErrValidation)
)
