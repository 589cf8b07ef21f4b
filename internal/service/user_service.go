package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/platform/logger"
	"github.com/colis-app/colis-api/internal/redact"
	"github.com/colis-app/colis-api/internal/service/auth"
	"github.com/colis-app/colis-api/internal/store"
	"github.com/google/uuid"
)

// RegistrationData is what a visitor submits to create a user.
type RegistrationData struct {
	Email    string
	Password string
	Username string // Defaults to Email
	Role     domain.Role
	Profile  domain.Profile
}

// UserService provides user registration and profile operations.
type UserService interface {
	// Register creates the user, its account and, for carriers, an empty
	// carrier profile in one transaction.
	Register(ctx context.Context, data RegistrationData) (*domain.User, error)

	// GetUser retrieves an active user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListUsers returns every active user ordered by creation time.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser applies patch on behalf of caller. Role and identity
	// verification changes require an admin caller.
	UpdateUser(ctx context.Context, caller *domain.Identity, userID uuid.UUID, patch domain.UserPatch) (*domain.User, error)

	// DeleteUser soft-deletes the user and removes its account and carrier profile.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	db           *sql.DB
	userStore    store.UserStore
	accountStore store.AccountStore
	carrierStore store.CarrierStore
	logger       *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	accountStore store.AccountStore,
	carrierStore store.CarrierStore,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		db:           db,
		userStore:    userStore,
		accountStore: accountStore,
		carrierStore: carrierStore,
		logger:       logger.With("component", "user_service"),
	}
}

// Register implements UserService.Register
func (s *UserServiceImpl) Register(ctx context.Context, data RegistrationData) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	role := data.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role == domain.RoleAdmin {
		return nil, ErrAdminRegistration
	}

	user, err := domain.NewUser(data.Email, data.Password, role, data.Profile)
	if err != nil {
		log.Debug("rejected registration", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.userStore.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}

		account, err := domain.NewAccount(user, data.Username)
		if err != nil {
			return err
		}
		if err := s.accountStore.WithTx(tx).Create(ctx, account); err != nil {
			return err
		}

		if user.IsCarrier() {
			if err := s.carrierStore.WithTx(tx).Create(ctx, domain.NewCarrier(user)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register with existing email")
		} else {
			log.Error("failed to register user", "error", redact.Error(err))
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered",
		"user_id", user.ID,
		"role", user.Role)
	return user, nil
}

// GetUser implements UserService.GetUser
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.FindByKey(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// ListUsers implements UserService.ListUsers
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser implements UserService.UpdateUser
// A role change keeps the carrier profile in step: becoming a carrier creates
// an empty profile, leaving the role removes it.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	caller *domain.Identity,
	userID uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.TouchesAdminFields() && !caller.IsAdmin() {
		log.Warn("non-admin attempted to change admin-only fields",
			"user_id", userID)
		return nil, auth.ErrInsufficientRole
	}

	var updated *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		user, err := s.userStore.WithTx(tx).Update(ctx, userID, patch)
		if err != nil {
			return err
		}
		updated = user

		if patch.Role == nil {
			return nil
		}
		return s.syncCarrierProfile(ctx, tx, user)
	})
	if err != nil {
		if !store.IsNotFoundError(err) && !errors.Is(err, domain.ErrValidation) {
			log.Error("failed to update user",
				"error", redact.Error(err),
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

func (s *UserServiceImpl) syncCarrierProfile(ctx context.Context, tx *sql.Tx, user *domain.User) error {
	carriers := s.carrierStore.WithTx(tx)

	existing, err := carriers.FindByOwner(ctx, user.ID)
	if err != nil {
		return err
	}

	switch {
	case user.IsCarrier() && existing == nil:
		carrier := domain.NewCarrier(user)
		carrier.CreatedAt = user.UpdatedAt
		return carriers.Create(ctx, carrier)
	case !user.IsCarrier() && existing != nil:
		return carriers.DeleteByKey(ctx, user.ID)
	}
	return nil
}

// DeleteUser implements UserService.DeleteUser
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.DeleteByKey(ctx, userID); err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete user",
				"error", redact.Error(err),
				"user_id", userID)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
