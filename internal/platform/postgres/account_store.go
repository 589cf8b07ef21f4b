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

const accountColumns = `user_id, username, email, password_hash, created_at, updated_at`

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
func NewPostgresAccountStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAccountStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:         tx,
		bcryptCost: s.bcryptCost,
		logger:     s.logger,
	}
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.UserID,
		&account.Username,
		&account.Email,
		&account.HashedPassword,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create implements store.AccountStore.Create
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", account.UserID.String()))
		return invalidEntity(err)
	}

	// Hash the plaintext password and clear it from the entity
	if account.Password != "" {
		hash, err := hashPassword(account.Password, s.bcryptCost)
		if err != nil {
			return err
		}
		account.HashedPassword = hash
		account.Password = ""
	}

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.UserID,
		account.Username,
		account.Email,
		account.HashedPassword,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("account already exists or email in use",
				slog.String("user_id", account.UserID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create account",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", account.UserID.String()))
		return store.NewStoreError("account", "create", "insert failed",
			MapError(err, store.ErrAccountNotFound, store.ErrEmailExists))
	}

	log.Debug("account created", slog.String("user_id", account.UserID.String()))
	return nil
}

// FindByOwner implements store.AccountStore.FindByOwner
func (s *PostgresAccountStore) FindByOwner(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error("failed to get account",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("account", "get", "query failed", err)
	}
	return account, nil
}

// FindByKey implements store.Mapper.FindByKey
// Returns store.ErrAccountNotFound when the user has no account.
func (s *PostgresAccountStore) FindByKey(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// FindAll implements store.Mapper.FindAll
func (s *PostgresAccountStore) FindAll(ctx context.Context) ([]domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at, user_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list accounts", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("account", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, store.NewStoreError("account", "list", "scan failed", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("account", "list", "row iteration failed", err)
	}
	return accounts, nil
}

// Update implements store.AccountStore.Update
func (s *PostgresAccountStore) Update(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.AccountPatch,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Load the current row, an empty patch returns it unchanged
	account, err := s.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, store.ErrAccountNotFound
	}
	if patch.IsEmpty() {
		return account, nil
	}

	// Merge, validate and hash a new password before the write
	patch.ApplyTo(account)
	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, invalidEntity(err)
	}
	if account.Password != "" {
		hash, err := hashPassword(account.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		account.HashedPassword = hash
		account.Password = ""
	}
	account.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE accounts
		SET username = $1, email = $2, password_hash = $3, updated_at = $4
		WHERE user_id = $5
		RETURNING ` + accountColumns

	updated, err := scanAccount(s.db.QueryRowContext(
		ctx,
		query,
		account.Username,
		account.Email,
		account.HashedPassword,
		account.UpdatedAt,
		userID,
	))
	if err != nil {
		mapped := MapError(err, store.ErrAccountNotFound, store.ErrEmailExists)
		if !store.IsNotFoundError(mapped) && !store.IsDuplicateError(mapped) {
			log.Error("failed to update account",
				slog.String("error", redact.Error(err)),
				slog.String("user_id", userID.String()))
		}
		return nil, mapped
	}

	log.Info("account updated", slog.String("user_id", userID.String()))
	return updated, nil
}

// DeleteByKey implements store.Mapper.DeleteByKey
func (s *PostgresAccountStore) DeleteByKey(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return store.NewStoreError("account", "delete", "delete failed", err)
	}
	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		return err
	}

	log.Info("account deleted", slog.String("user_id", userID.String()))
	return nil
}
