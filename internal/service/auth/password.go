package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier compares a stored bcrypt hash with a login attempt.
type PasswordVerifier interface {
	// Compare returns nil when password matches hashedPassword.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// NewDummyHash returns a memoized bcrypt hash, at the given cost, that
// matches no user password. Login compares against it when the email is
// unknown so both failure paths spend the same bcrypt work. cost must be the
// cost stored user hashes are generated with.
func NewDummyHash(cost int) func() string {
	return sync.OnceValue(func() string {
		hash, err := bcrypt.GenerateFromPassword([]byte("no-such-user-placeholder"), cost)
		if err != nil {
			return ""
		}
		return string(hash)
	})
}
