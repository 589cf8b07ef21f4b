package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the personal and delivery details of a user.
type Profile struct {
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Address     string     `json:"address"`
	CompAddress string     `json:"comp_address,omitempty"`
	Zipcode     string     `json:"zipcode"`
	City        string     `json:"city"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	PhoneNumber string     `json:"phone_number"`
}

// User represents a registered user of the delivery platform.
// A deleted user keeps its row with DeletedAt set so that delivery history
// stays intact; every lookup treats it as absent.
type User struct {
	ID uuid.UUID `json:"id"`
	Profile
	Email            string     `json:"email"`
	Password         string     `json:"-"` // Plaintext, only set between registration and hashing
	HashedPassword   string     `json:"-"`
	Role             Role       `json:"role"`
	IdentityVerified bool       `json:"identity_verified"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"-"`
}

// NewUser creates a new User with a fresh ID and timestamps.
// The caller is responsible for hashing the password before storing the user.
func NewUser(email, password string, role Role, profile Profile) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Profile:   profile,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if err := validateEmail(u.Email); err != nil {
		return err
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	// Existing users only carry the hash; new or changed passwords are plaintext.
	if u.Password != "" {
		return validatePassword(u.Password)
	}
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// IsCarrier reports whether the user should own a carrier profile.
func (u *User) IsCarrier() bool {
	return u.Role == RoleCarrier
}

// UserPatch is a partial update of a user. A nil field leaves the stored value untouched.
// Role and IdentityVerified are reserved to administrators.
type UserPatch struct {
	FirstName        *string    `json:"first_name,omitempty"`
	LastName         *string    `json:"last_name,omitempty"`
	Address          *string    `json:"address,omitempty"`
	CompAddress      *string    `json:"comp_address,omitempty"`
	Zipcode          *string    `json:"zipcode,omitempty"`
	City             *string    `json:"city,omitempty"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	PhoneNumber      *string    `json:"phone_number,omitempty"`
	Role             *Role      `json:"role,omitempty"`
	IdentityVerified *bool      `json:"identity_verified,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Address == nil &&
		p.CompAddress == nil && p.Zipcode == nil && p.City == nil &&
		p.BirthDate == nil && p.PhoneNumber == nil && p.Role == nil &&
		p.IdentityVerified == nil
}

// TouchesAdminFields reports whether the patch sets fields only admins may change.
func (p UserPatch) TouchesAdminFields() bool {
	return p.Role != nil || p.IdentityVerified != nil
}

// Validate checks the fields present in the patch.
func (p UserPatch) Validate() error {
	if p.Role != nil && !p.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// ApplyTo merges the present fields onto u.
func (p UserPatch) ApplyTo(u *User) {
	setString(&u.FirstName, p.FirstName)
	setString(&u.LastName, p.LastName)
	setString(&u.Address, p.Address)
	setString(&u.CompAddress, p.CompAddress)
	setString(&u.Zipcode, p.Zipcode)
	setString(&u.City, p.City)
	setString(&u.PhoneNumber, p.PhoneNumber)
	if p.BirthDate != nil {
		bd := *p.BirthDate
		u.BirthDate = &bd
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IdentityVerified != nil {
		u.IdentityVerified = *p.IdentityVerified
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
