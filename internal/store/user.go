package store

import (
	"context"
	"database/sql"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
// Deleted users are invisible to every read.
type UserStore interface {
	Mapper[domain.User, uuid.UUID]

	// Create saves a new user. It validates the user, hashes the plaintext
	// Password into HashedPassword and clears the plaintext.
	// Returns ErrEmailExists if an active user already has the email.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves an active user by email (case-insensitive).
	// Returns ErrUserNotFound if there is none.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update merges patch onto the stored user and persists it in one write.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)

	// UpdateCredentials overwrites the login email and password hash.
	// Returns ErrUserNotFound or ErrEmailExists.
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) error

	// LockForUpdate takes a row lock on the active user for the rest of the
	// current transaction. Transactions writing a user's account or carrier
	// rows take it first so that users is always locked before them.
	// Returns ErrUserNotFound if the user does not exist or was deleted.
	LockForUpdate(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to tx.
	WithTx(tx *sql.Tx) UserStore
}
