// Package repository provides hand-written test doubles for the domain
// repository interfaces.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	domainrepo "bazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter domainrepo.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

// MockCartRepository mocks repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) UpsertItem(ctx context.Context, userID string, item *entity.CartItem) error {
	args := m.Called(ctx, userID, item)

	return args.Error(0)
}

func (m *MockCartRepository) FindItemByID(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartItem), args.Error(1)
}

func (m *MockCartRepository) ListItems(ctx context.Context, userID string) (entity.CartItems, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(entity.CartItems), args.Error(1)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)

	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, userID, productID string) error {
	args := m.Called(ctx, userID, productID)

	return args.Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) PlaceOrder(ctx context.Context, placement *domainrepo.OrderPlacement) (*domainrepo.PlacementResult, error) {
	args := m.Called(ctx, placement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainrepo.PlacementResult), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*entity.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) DeleteProfile(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}
