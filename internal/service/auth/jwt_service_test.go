package auth

import (
	"context"
	"testing"
	"time"

	"github.com/colis-app/colis-api/internal/config"
	"github.com/colis-app/colis-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestService(t *testing.T, secret string, now func() time.Time) JWTService {
	t.Helper()
	svc, err := NewJWTServiceWithClock(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
	}, now)
	require.NoError(t, err)
	return svc
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestNewJWTService_RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, testSecret, fixedClock(fixedTime))
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(context.Background(), userID, domain.RoleCarrier)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), expiresAt.Unix())

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RoleCarrier, claims.Role)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret, time.Now)
	userID := uuid.New()

	first, _, err := svc.GenerateToken(context.Background(), userID, domain.RoleCustomer)
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(context.Background(), userID, domain.RoleCustomer)
	require.NoError(t, err)

	c1, err := svc.ValidateToken(context.Background(), first)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(context.Background(), second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestGenerateToken_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret, time.Now)
	_, _, err := svc.GenerateToken(context.Background(), uuid.New(), domain.Role("pilot"))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func signCustom(t *testing.T, claims jwtCustomClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	registered := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(fixedTime),
		ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		ID:        uuid.NewString(),
	}

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				svc := newTestService(t, testSecret, fixedClock(fixedTime))
				token, _, _ := svc.GenerateToken(context.Background(), userID, domain.RoleCustomer)
				return svc, token
			},
		},
		{
			name: "within clock skew after expiry",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, _, _ := newTestService(t, testSecret, fixedClock(fixedTime)).
					GenerateToken(context.Background(), userID, domain.RoleCustomer)
				return newTestService(t, testSecret, fixedClock(fixedTime.Add(time.Hour+time.Minute))), token
			},
		},
		{
			name: "expired token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, _, _ := newTestService(t, testSecret, fixedClock(fixedTime)).
					GenerateToken(context.Background(), userID, domain.RoleCustomer)
				return newTestService(t, testSecret, fixedClock(fixedTime.Add(2*time.Hour))), token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, _, _ := newTestService(t, testSecret, fixedClock(fixedTime)).
					GenerateToken(context.Background(), userID, domain.RoleCustomer)
				return newTestService(t, "wrong-secret-that-is-long-enough-for-testing", fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(t, testSecret, fixedClock(fixedTime)), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(t, testSecret, fixedClock(fixedTime)), ""
			},
			wantErr: ErrMissingToken,
		},
		{
			name: "wrong token type",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(t, testSecret, fixedClock(fixedTime)), signCustom(t, jwtCustomClaims{
					UserID: userID, Role: "customer", TokenType: "refresh", RegisteredClaims: registered,
				})
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unknown role",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(t, testSecret, fixedClock(fixedTime)), signCustom(t, jwtCustomClaims{
					UserID: userID, Role: "superuser", TokenType: "access", RegisteredClaims: registered,
				})
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			setupFunc: func(t *testing.T) (JWTService, string) {
				noExpiry := registered
				noExpiry.ExpiresAt = nil
				return newTestService(t, testSecret, fixedClock(fixedTime)), signCustom(t, jwtCustomClaims{
					UserID: userID, Role: "customer", TokenType: "access", RegisteredClaims: noExpiry,
				})
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc(t)
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}
