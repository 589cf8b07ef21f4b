package auth

import (
	"github.com/colis-app/colis-api/internal/domain"
	"github.com/google/uuid"
)

// Authorize decides whether identity may act on the resources owned by
// targetUserID. Owners and admins are allowed; everyone else gets ErrNotOwner.
func Authorize(identity *domain.Identity, targetUserID uuid.UUID) error {
	if identity == nil {
		return ErrMissingToken
	}
	if identity.IsAdmin() || identity.UserID == targetUserID {
		return nil
	}
	return ErrNotOwner
}

// RequireRole allows identities holding role, and admins for any role.
func RequireRole(identity *domain.Identity, role domain.Role) error {
	if identity == nil {
		return ErrMissingToken
	}
	if identity.IsAdmin() || identity.Role == role {
		return nil
	}
	return ErrInsufficientRole
}
