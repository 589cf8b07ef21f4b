package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential view of a user, keyed by the owning user ID.
type Account struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only set until the store hashes it
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAccount derives the account created alongside a user at registration.
// The username defaults to the email address.
func NewAccount(user *User, username string) (*Account, error) {
	if username == "" {
		username = user.Email
	}
	a := &Account{
		UserID:         user.ID,
		Username:       username,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if a.Username == "" {
		return ErrEmptyUsername
	}
	if err := validateEmail(a.Email); err != nil {
		return err
	}
	if a.Password != "" {
		return validatePassword(a.Password)
	}
	if a.HashedPassword == "" {
		return ErrEmptyPassword
	}
	return nil
}

// AccountPatch is a partial update of an account; nil fields are left untouched.
type AccountPatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Password == nil
}

// ChangesCredentials reports whether the patch touches the login email or password.
func (p AccountPatch) ChangesCredentials() bool {
	return p.Email != nil || p.Password != nil
}

// ApplyTo merges the present fields onto a. A new password is stored as
// plaintext in a.Password and must be hashed before persisting.
func (p AccountPatch) ApplyTo(a *Account) {
	setString(&a.Username, p.Username)
	setString(&a.Email, p.Email)
	setString(&a.Password, p.Password)
}
