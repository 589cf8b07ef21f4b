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

const userColumns = `id, email, password_hash, first_name, last_name, address, comp_address,
	zipcode, city, birth_date, phone_number, role, identity_verified, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// bcryptCost is the work factor used when hashing passwords on Create.
// If logger is nil, the default logger is used.
func NewPostgresUserStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:         tx,
		bcryptCost: s.bcryptCost,
		logger:     s.logger,
	}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user      domain.User
		role      string
		birthDate sql.NullTime
	)
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.FirstName,
		&user.LastName,
		&user.Address,
		&user.CompAddress,
		&user.Zipcode,
		&user.City,
		&birthDate,
		&user.PhoneNumber,
		&role,
		&user.IdentityVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	if birthDate.Valid {
		bd := birthDate.Time
		user.BirthDate = &bd
	}
	return &user, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate the user before touching the database
	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return invalidEntity(err)
	}

	// Hash the plaintext password and clear it from the entity
	if user.Password != "" {
		hash, err := hashPassword(user.Password, s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("user_id", user.ID.String()))
			return err
		}
		user.HashedPassword = hash
		user.Password = ""
	}

	// Insert the user record
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.HashedPassword,
		user.FirstName,
		user.LastName,
		user.Address,
		user.CompAddress,
		user.Zipcode,
		user.City,
		nullableTime(user.BirthDate),
		user.PhoneNumber,
		string(user.Role),
		user.IdentityVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("email already in use", slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", "insert failed",
			MapError(err, store.ErrUserNotFound, store.ErrEmailExists))
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return nil
}

// FindByKey implements store.Mapper.FindByKey
// Returns store.ErrUserNotFound if the user does not exist or was deleted.
func (s *PostgresUserStore) FindByKey(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", id.String()))
		return nil, store.NewStoreError("user", "get", "query failed", err)
	}
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no active user with email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", "get", "query failed", err)
	}
	return user, nil
}

// FindAll implements store.Mapper.FindAll
func (s *PostgresUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", "list", "query failed", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, store.NewStoreError("user", "list", "scan failed", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("user", "list", "row iteration failed", err)
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, invalidEntity(err)
	}

	// Load the current row, an empty patch returns it unchanged
	user, err := s.FindByKey(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return user, nil
	}

	// Merge the present fields and write the whole row back
	patch.ApplyTo(user)
	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, address = $3, comp_address = $4, zipcode = $5,
			city = $6, birth_date = $7, phone_number = $8, role = $9, identity_verified = $10,
			updated_at = $11
		WHERE id = $12 AND deleted_at IS NULL
		RETURNING ` + userColumns

	updated, err := scanUser(s.db.QueryRowContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Address,
		user.CompAddress,
		user.Zipcode,
		user.City,
		nullableTime(user.BirthDate),
		user.PhoneNumber,
		string(user.Role),
		user.IdentityVerified,
		user.UpdatedAt,
		id,
	))
	if err != nil {
		mapped := MapError(err, store.ErrUserNotFound, store.ErrEmailExists)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update user",
				slog.String("error", redact.Error(err)),
				slog.String("user_id", id.String()))
		}
		return nil, mapped
	}

	log.Info("user updated", slog.String("user_id", id.String()))
	return updated, nil
}

// UpdateCredentials implements store.UserStore.UpdateCredentials
func (s *PostgresUserStore) UpdateCredentials(
	ctx context.Context,
	id uuid.UUID,
	email, hashedPassword string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET email = $1, password_hash = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
	`
	result, err := s.db.ExecContext(ctx, query, email, hashedPassword, time.Now().UTC(), id)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		log.Error("failed to update user credentials",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", id.String()))
		return store.NewStoreError("user", "update", "credentials update failed", err)
	}

	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// LockForUpdate implements store.UserStore.LockForUpdate
// Only meaningful on a store bound to a transaction.
func (s *PostgresUserStore) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id FROM users WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`

	var locked uuid.UUID
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrUserNotFound
		}
		log.Error("failed to lock user row",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", id.String()))
		return store.NewStoreError("user", "lock", "select for update failed", err)
	}
	return nil
}

// DeleteByKey implements store.Mapper.DeleteByKey
// The user row is kept with deleted_at set while its account and carrier rows
// are removed, all in one statement.
func (s *PostgresUserStore) DeleteByKey(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		WITH deleted AS (
			UPDATE users SET deleted_at = $2, updated_at = $2
			WHERE id = $1 AND deleted_at IS NULL
			RETURNING id
		), removed_accounts AS (
			DELETE FROM accounts WHERE user_id IN (SELECT id FROM deleted)
		), removed_carriers AS (
			DELETE FROM carriers WHERE user_id IN (SELECT id FROM deleted)
		)
		SELECT COUNT(*) FROM deleted
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, id, time.Now().UTC()).Scan(&count); err != nil {
		log.Error("failed to delete user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", id.String()))
		return store.NewStoreError("user", "delete", "soft delete failed", err)
	}
	if count == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}
