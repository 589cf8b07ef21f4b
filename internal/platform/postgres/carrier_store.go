package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/platform/logger"
	"github.com/colis-app/colis-api/internal/redact"
	"github.com/colis-app/colis-api/internal/store"
	"github.com/google/uuid"
)

const carrierColumns = `user_id, vehicle_type, license_plate, coverage_area, max_load_kg, created_at, updated_at`

// PostgresCarrierStore implements the store.CarrierStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCarrierStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCarrierStore creates a new PostgreSQL implementation of the CarrierStore interface.
func NewPostgresCarrierStore(db store.DBTX, logger *slog.Logger) *PostgresCarrierStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCarrierStore{
		db:     db,
		logger: logger.With(slog.String("component", "carrier_store")),
	}
}

// Ensure PostgresCarrierStore implements store.CarrierStore interface
var _ store.CarrierStore = (*PostgresCarrierStore)(nil)

// WithTx implements store.CarrierStore.WithTx
func (s *PostgresCarrierStore) WithTx(tx *sql.Tx) store.CarrierStore {
	return &PostgresCarrierStore{db: tx, logger: s.logger}
}

func scanCarrier(row rowScanner) (*domain.Carrier, error) {
	var carrier domain.Carrier
	err := row.Scan(
		&carrier.UserID,
		&carrier.VehicleType,
		&carrier.LicensePlate,
		&carrier.CoverageArea,
		&carrier.MaxLoadKg,
		&carrier.CreatedAt,
		&carrier.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &carrier, nil
}

// Create implements store.CarrierStore.Create
func (s *PostgresCarrierStore) Create(ctx context.Context, carrier *domain.Carrier) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := carrier.Validate(); err != nil {
		return invalidEntity(err)
	}

	query := `
		INSERT INTO carriers (` + carrierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		carrier.UserID,
		carrier.VehicleType,
		carrier.LicensePlate,
		carrier.CoverageArea,
		carrier.MaxLoadKg,
		carrier.CreatedAt,
		carrier.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create carrier",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", carrier.UserID.String()))
		return store.NewStoreError("carrier", "create", "insert failed",
			MapError(err, store.ErrCarrierNotFound, store.ErrDuplicate))
	}

	log.Debug("carrier created", slog.String("user_id", carrier.UserID.String()))
	return nil
}

// FindByOwner implements store.CarrierStore.FindByOwner
func (s *PostgresCarrierStore) FindByOwner(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + carrierColumns + ` FROM carriers WHERE user_id = $1`

	carrier, err := scanCarrier(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error("failed to get carrier",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("carrier", "get", "query failed", err)
	}
	return carrier, nil
}

// FindByKey implements store.Mapper.FindByKey
func (s *PostgresCarrierStore) FindByKey(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error) {
	carrier, err := s.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, store.ErrCarrierNotFound
	}
	return carrier, nil
}

// FindAll implements store.Mapper.FindAll
func (s *PostgresCarrierStore) FindAll(ctx context.Context) ([]domain.Carrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM carriers ORDER BY created_at, user_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewStoreError("carrier", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	carriers := make([]domain.Carrier, 0)
	for rows.Next() {
		carrier, err := scanCarrier(rows)
		if err != nil {
			return nil, store.NewStoreError("carrier", "list", "scan failed", err)
		}
		carriers = append(carriers, *carrier)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("carrier", "list", "row iteration failed", err)
	}
	return carriers, nil
}

// Update implements store.CarrierStore.Update
func (s *PostgresCarrierStore) Update(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.CarrierPatch,
) (*domain.Carrier, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Load the current profile, a missing one cannot be patched
	carrier, err := s.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, store.ErrCarrierNotFound
	}
	if patch.IsEmpty() {
		return carrier, nil
	}

	// Merge and validate before the single write
	patch.ApplyTo(carrier)
	if err := carrier.Validate(); err != nil {
		return nil, invalidEntity(err)
	}
	carrier.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE carriers
		SET vehicle_type = $1, license_plate = $2, coverage_area = $3, max_load_kg = $4, updated_at = $5
		WHERE user_id = $6
		RETURNING ` + carrierColumns

	updated, err := scanCarrier(s.db.QueryRowContext(
		ctx,
		query,
		carrier.VehicleType,
		carrier.LicensePlate,
		carrier.CoverageArea,
		carrier.MaxLoadKg,
		carrier.UpdatedAt,
		userID,
	))
	if err != nil {
		mapped := MapError(err, store.ErrCarrierNotFound, store.ErrDuplicate)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update carrier",
				slog.String("error", redact.Error(err)),
				slog.String("user_id", userID.String()))
		}
		return nil, mapped
	}

	log.Info("carrier updated", slog.String("user_id", userID.String()))
	return updated, nil
}

// DeleteByKey implements store.Mapper.DeleteByKey
func (s *PostgresCarrierStore) DeleteByKey(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM carriers WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete carrier",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return store.NewStoreError("carrier", "delete", "delete failed", err)
	}
	if err := CheckRowsAffected(result, store.ErrCarrierNotFound); err != nil {
		return err
	}

	log.Info("carrier deleted", slog.String("user_id", userID.String()))
	return nil
}
