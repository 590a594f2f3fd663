// Package mocks provides testify mocks for the domain repository interfaces.
package mocks

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository builds a mock whose expectations are asserted on
// test cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.User, error) {
	args := m.Called(ctx, email, phone)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockSellerRepository mocks repository.SellerRepository.
type MockSellerRepository struct {
	mock.Mock
}

func NewMockSellerRepository(t *testing.T) *MockSellerRepository {
	m := &MockSellerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	args := m.Called(ctx, id)
	if seller, ok := args.Get(0).(*entity.Seller); ok {
		return seller, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSellerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Seller, error) {
	args := m.Called(ctx, phone)
	if seller, ok := args.Get(0).(*entity.Seller); ok {
		return seller, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSellerRepository) FindByUniqueFields(ctx context.Context, email, phone, gstn string) (*entity.Seller, error) {
	args := m.Called(ctx, email, phone, gstn)
	if seller, ok := args.Get(0).(*entity.Seller); ok {
		return seller, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (m *MockSellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(repository.UserRepository); ok {
		return repo
	}

	return nil
}

func (m *MockRepositoryFactory) SellerRepo() repository.SellerRepository {
	args := m.Called()
	if repo, ok := args.Get(0).(repository.SellerRepository); ok {
		return repo
	}

	return nil
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.Called(ctx, fn).Error(0)
}

// PassthroughTransactionManager runs the callback directly against a
// fixed factory, so service tests exercise the real transaction closure.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
