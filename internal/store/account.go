package store

import (
	"context"
	"database/sql"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/google/uuid"
)

// AccountStore persists accounts keyed by their owning user ID.
type AccountStore interface {
	Mapper[domain.Account, uuid.UUID]

	// FindByOwner returns the account of userID, or (nil, nil) when the user
	// has none. Absence is not an error.
	FindByOwner(ctx context.Context, userID uuid.UUID) (*domain.Account, error)

	// Create inserts an account for a freshly registered user.
	// Returns ErrEmailExists on a duplicate email.
	Create(ctx context.Context, account *domain.Account) error

	// Update loads the account of userID, merges patch onto it (hashing a new
	// password) and writes every column back in one statement.
	// Returns ErrAccountNotFound when the user has no account.
	Update(ctx context.Context, userID uuid.UUID, patch domain.AccountPatch) (*domain.Account, error)

	// WithTx returns an AccountStore bound to tx.
	WithTx(tx *sql.Tx) AccountStore
}
