package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func (m *memoryRevocationList) Revoke(_ context.Context, tokenID string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.revoked == nil {
		m.revoked = make(map[string]time.Time)
	}
	m.revoked[tokenID] = until
	return nil
}

func (m *memoryRevocationList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.revoked[tokenID]
	return ok, nil
}

func TestIdentityResolver_Resolve(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret, time.Now)
	userID := uuid.New()
	token, expiresAt, err := svc.GenerateToken(context.Background(), userID, domain.RoleAdmin)
	require.NoError(t, err)

	t.Run("valid token yields identity", func(t *testing.T) {
		t.Parallel()
		r := NewIdentityResolver(svc, nil, nil)

		identity, err := r.Resolve(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, domain.RoleAdmin, identity.Role)
		assert.NotEmpty(t, identity.TokenID)
		assert.Equal(t, expiresAt.Unix(), identity.ExpiresAt.Unix())
	})

	t.Run("missing credential", func(t *testing.T) {
		t.Parallel()
		r := NewIdentityResolver(svc, nil, nil)

		_, err := r.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("garbage credential", func(t *testing.T) {
		t.Parallel()
		r := NewIdentityResolver(svc, nil, nil)

		_, err := r.Resolve(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		t.Parallel()
		list := &memoryRevocationList{}
		r := NewIdentityResolver(svc, list, nil)

		identity, err := r.Resolve(context.Background(), token)
		require.NoError(t, err)
		require.NoError(t, list.Revoke(context.Background(), identity.TokenID, identity.ExpiresAt))

		_, err = r.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revocation lookup failure is not an auth failure", func(t *testing.T) {
		t.Parallel()
		r := NewIdentityResolver(svc, &memoryRevocationList{err: errors.New("redis down")}, nil)

		_, err := r.Resolve(context.Background(), token)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidToken)
		assert.NotErrorIs(t, err, ErrMissingToken)
	})
}
