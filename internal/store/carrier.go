package store

import (
	"context"
	"database/sql"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/google/uuid"
)

// CarrierStore persists carrier profiles keyed by their owning user ID.
type CarrierStore interface {
	Mapper[domain.Carrier, uuid.UUID]

	// FindByOwner returns the carrier profile of userID, or (nil, nil) when
	// the user has none.
	FindByOwner(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error)

	// Create inserts the profile of a freshly registered carrier.
	Create(ctx context.Context, carrier *domain.Carrier) error

	// Update loads the profile of userID, merges patch onto it and writes it back.
	// Returns ErrCarrierNotFound when the user has no profile.
	Update(ctx context.Context, userID uuid.UUID, patch domain.CarrierPatch) (*domain.Carrier, error)

	// WithTx returns a CarrierStore bound to tx.
	WithTx(tx *sql.Tx) CarrierStore
}
