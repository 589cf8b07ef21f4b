package mocks

import (
	"context"
	"database/sql"

	"github.com/colis-app/colis-api/internal/domain"
	"github.com/colis-app/colis-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a testify mock of store.UserStore.
// WithTx returns the mock itself, so expectations hold inside transactions.
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) FindByKey(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockUserStore) DeleteByKey(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) error {
	return m.Called(ctx, id, email, hashedPassword).Error(0)
}

func (m *MockUserStore) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserStore) WithTx(*sql.Tx) store.UserStore {
	return m
}

// MockAccountStore is a testify mock of store.AccountStore.
type MockAccountStore struct {
	mock.Mock
}

var _ store.AccountStore = (*MockAccountStore)(nil)

func (m *MockAccountStore) FindByKey(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountStore) FindAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountStore) DeleteByKey(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAccountStore) FindByOwner(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountStore) Update(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.AccountPatch,
) (*domain.Account, error) {
	args := m.Called(ctx, userID, patch)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *MockAccountStore) WithTx(*sql.Tx) store.AccountStore {
	return m
}

// MockCarrierStore is a testify mock of store.CarrierStore.
type MockCarrierStore struct {
	mock.Mock
}

var _ store.CarrierStore = (*MockCarrierStore)(nil)

func (m *MockCarrierStore) FindByKey(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error) {
	args := m.Called(ctx, userID)
	carrier, _ := args.Get(0).(*domain.Carrier)
	return carrier, args.Error(1)
}

func (m *MockCarrierStore) FindAll(ctx context.Context) ([]domain.Carrier, error) {
	args := m.Called(ctx)
	carriers, _ := args.Get(0).([]domain.Carrier)
	return carriers, args.Error(1)
}

func (m *MockCarrierStore) DeleteByKey(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockCarrierStore) FindByOwner(ctx context.Context, userID uuid.UUID) (*domain.Carrier, error) {
	args := m.Called(ctx, userID)
	carrier, _ := args.Get(0).(*domain.Carrier)
	return carrier, args.Error(1)
}

func (m *MockCarrierStore) Create(ctx context.Context, carrier *domain.Carrier) error {
	return m.Called(ctx, carrier).Error(0)
}

func (m *MockCarrierStore) Update(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.CarrierPatch,
) (*domain.Carrier, error) {
	args := m.Called(ctx, userID, patch)
	carrier, _ := args.Get(0).(*domain.Carrier)
	return carrier, args.Error(1)
}

func (m *MockCarrierStore) WithTx(*sql.Tx) store.CarrierStore {
	return m
}
