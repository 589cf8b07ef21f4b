package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/platform/logger"
	"github.com/colis-app/colis-api/internal/redact"
	"github.com/colis-app/colis-api/internal/service/auth"
	"github.com/colis-app/colis-api/internal/store"
	"github.com/google/uuid"
)

// AuthResult is the outcome of a successful login.
type AuthResult struct {
	UserID    uuid.UUID
	Role      domain.Role
	Token     string
	ExpiresAt time.Time
}

// AuthService handles login and logout.
type AuthService interface {
	// Authenticate checks email and password and issues an access token.
	// An unknown email and a wrong password both yield auth.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)

	// Logout revokes the token the caller authenticated with.
	Logout(ctx context.Context, caller *domain.Identity) error
}

type authService struct {
	userStore store.UserStore
	verifier  auth.PasswordVerifier
	tokens    auth.JWTService
	revoked   auth.RevocationList
	dummyHash func() string
	logger    *slog.Logger
}

// NewAuthService creates an AuthService. revoked may be nil, which turns
// Logout into a no-op. bcryptCost is the cost of the stored password hashes.
func NewAuthService(
	userStore store.UserStore,
	verifier auth.PasswordVerifier,
	tokens auth.JWTService,
	revoked auth.RevocationList,
	bcryptCost int,
	logger *slog.Logger,
) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		userStore: userStore,
		verifier:  verifier,
		tokens:    tokens,
		revoked:   revoked,
		dummyHash: auth.NewDummyHash(bcryptCost),
		logger:    logger.With("component", "auth_service"),
	}
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = s.verifier.Compare(s.dummyHash(), password)
			log.Debug("login attempt for unknown email")
			return nil, auth.ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login attempt with wrong password", "user_id", user.ID)
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(ctx, user.ID, user.Role)
	if err != nil {
		log.Error("failed to issue token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return &AuthResult{
		UserID:    user.ID,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, caller *domain.Identity) error {
	if caller == nil {
		return auth.ErrMissingToken
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.revoked == nil {
		log.Debug("token revocation disabled, logout is a no-op", "user_id", caller.UserID)
		return nil
	}

	if err := s.revoked.Revoke(ctx, caller.TokenID, caller.ExpiresAt); err != nil {
		log.Error("failed to revoke token", "error", err, "user_id", caller.UserID)
		return fmt.Errorf("failed to log out: %w", err)
	}

	log.Info("user logged out", "user_id", caller.UserID)
	return nil
}
