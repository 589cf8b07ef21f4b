package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/platform/logger"
	"github.com/colis-app/colis-api/internal/store"
	"github.com/google/uuid"
)

// AccountService manages the account sub-resource of a user.
type AccountService interface {
	// GetAccount returns the account of userID or store.ErrAccountNotFound.
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error)

	// UpdateAccount merges patch onto the account. A new email or password is
	// copied to the user's login credentials in the same transaction.
	UpdateAccount(ctx context.Context, userID uuid.UUID, patch domain.AccountPatch) (*domain.Account, error)

	// DeleteAccount removes the account of userID.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type accountService struct {
	db           *sql.DB
	userStore    store.UserStore
	accountStore store.AccountStore
	logger       *slog.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(
	db *sql.DB,
	userStore store.UserStore,
	accountStore store.AccountStore,
	logger *slog.Logger,
) AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		db:           db,
		userStore:    userStore,
		accountStore: accountStore,
		logger:       logger.With("component", "account_service"),
	}
}

func (s *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountStore.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve account: %w", err)
	}
	if account == nil {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

func (s *accountService) UpdateAccount(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.AccountPatch,
) (*domain.Account, error) {
	if !patch.ChangesCredentials() {
		account, err := s.accountStore.Update(ctx, userID, patch)
		if err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
		return account, nil
	}

	var updated *domain.Account
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		users := s.userStore.WithTx(tx)

		// Lock the user row before the account row, the same order a user
		// delete takes them in.
		if err := users.LockForUpdate(ctx, userID); err != nil {
			return err
		}

		account, err := s.accountStore.WithTx(tx).Update(ctx, userID, patch)
		if err != nil {
			return err
		}
		updated = account

		// Copy the merged credentials to the login record.
		return users.UpdateCredentials(ctx, userID, account.Email, account.HashedPassword)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("account credentials changed", "user_id", userID)
	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.accountStore.DeleteByKey(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
