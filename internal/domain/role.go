package domain

import "fmt"

// Role is the access tag carried by every user and embedded in bearer tokens.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleCarrier  Role = "carrier"
	RoleAdmin    Role = "admin"
)

// ErrInvalidRole is returned for a role outside customer, carrier and admin.
var ErrInvalidRole = fmt.Errorf("%w: invalid role", ErrValidation)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleCarrier, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts s into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}
