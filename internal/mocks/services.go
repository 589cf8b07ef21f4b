package mocks

import (
	"context"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/service"
	"github.com/colis-app/colis-api/internal/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a testify mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, data service.RegistrationData) (*domain.User, error) {
	args := m.Called(ctx, data)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockUserService) UpdateUser(
	ctx context.Context,
	caller *domain.Identity,
	userID uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	args := m.Called(ctx, caller, userID, patch)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockAuthService is a testify mock of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*service.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, caller *domain.Identity) error {
	return m.Called(ctx, caller).Error(0)
}

// MockAccountService is a testify mock of service.AccountService.
type MockAccountService struct {
	mock.Mock
}

var _ service.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountService) UpdateAccount(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.AccountPatch,
) (*domain.Account, error) {
	args := m.Called(ctx, userID, patch)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockCarrierService is a testify mock of service.CarrierService.
type MockCarrierService struct {
	mock.Mock
}

var _ service.CarrierService = (*MockCarrierService)(nil)

func (m *MockCarrierService) GetCarrier(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error) {
	args := m.Called(ctx, userID)
	carrier, _ := args.Get(0).(*domain.Carrier)
	return carrier, args.Error(1)
}

func (m *MockCarrierService) UpdateCarrier(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.CarrierPatch,
) (*domain.Carrier, error) {
	args := m.Called(ctx, userID, patch)
	carrier, _ := args.Get(0).(*domain.Carrier)
	return carrier, args.Error(1)
}

func (m *MockCarrierService) DeleteCarrier(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockIdentityResolver resolves credentials from a fixed table.
type MockIdentityResolver struct {
	Identities map[string]*domain.Identity
	Err        error
}

// Resolve returns the identity registered for credential, Err when set, or
// auth.ErrInvalidToken for unknown credentials.
func (m *MockIdentityResolver) Resolve(_ context.Context, credential string) (*domain.Identity, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if identity, ok := m.Identities[credential]; ok {
		return identity, nil
	}
	return nil, auth.ErrInvalidToken
}
