package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/platform/logger"
)

// RevocationList records token ids invalidated by logout before their expiry.
type RevocationList interface {
	// Revoke marks tokenID as revoked until the given time.
	Revoke(ctx context.Context, tokenID string, until time.Time) error

	// IsRevoked reports whether tokenID was revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// IdentityResolver turns a bearer credential into the caller's identity.
type IdentityResolver struct {
	tokens  JWTService
	revoked RevocationList
	logger  *slog.Logger
}

// NewIdentityResolver creates an IdentityResolver. revoked may be nil, in
// which case logout has no effect on token validity.
func NewIdentityResolver(tokens JWTService, revoked RevocationList, logger *slog.Logger) *IdentityResolver {
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityResolver{
		tokens:  tokens,
		revoked: revoked,
		logger:  logger.With(slog.String("component", "identity_resolver")),
	}
}

// Resolve verifies credential and returns the identity it carries.
// It fails with ErrMissingToken, ErrInvalidToken or ErrExpiredToken; an error
// reaching the revocation list is returned wrapped and is not an
// authentication failure.
func (r *IdentityResolver) Resolve(ctx context.Context, credential string) (*domain.Identity, error) {
	if credential == "" {
		return nil, ErrMissingToken
	}

	claims, err := r.tokens.ValidateToken(ctx, credential)
	if err != nil {
		return nil, err
	}

	if r.revoked != nil {
		revoked, err := r.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			logger.FromContextOrDefault(ctx, r.logger).Error("failed to check token revocation",
				slog.String("error", err.Error()),
				slog.String("token_id", claims.ID))
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			logger.FromContextOrDefault(ctx, r.logger).Debug("rejected revoked token",
				slog.String("token_id", claims.ID),
				slog.String("user_id", claims.UserID.String()))
			return nil, ErrInvalidToken
		}
	}

	return &domain.Identity{
		UserID:    claims.UserID,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
