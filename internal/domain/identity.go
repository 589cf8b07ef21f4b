package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated caller of a single request, decoded from a
// verified bearer token. It is never persisted.
type Identity struct {
	UserID    uuid.UUID
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
