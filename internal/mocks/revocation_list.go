package mocks

import (
	"context"
	"time"

	"github.com/colis-app/colis-api/internal/service/auth"
	"github.com/stretchr/testify/mock"
)

// MockRevocationList is a testify mock of auth.RevocationList.
type MockRevocationList struct {
	mock.Mock
}

var _ auth.RevocationList = (*MockRevocationList)(nil)

func (m *MockRevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	return m.Called(ctx, tokenID, until).Error(0)
}

func (m *MockRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
