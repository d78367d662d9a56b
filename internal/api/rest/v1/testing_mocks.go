//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, registration *users.Registration) (*users.User, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*users.AccessToken, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.AccessToken), args.Error(1)
}

func (m *MockAuthService) ResolveToken(ctx context.Context, token string) (*users.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, query *products.ProductQuery) ([]*products.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*products.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, productID uint) (*products.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, ownerID uint, product *products.Product) (*products.Product, error) {
	args := m.Called(ctx, ownerID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, productID uint, update *products.ProductUpdate) (*products.Product, error) {
	args := m.Called(ctx, productID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*products.Product), args.Error(1)
}

func (m *MockProductService) DeleteByID(ctx context.Context, productID uint) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockCartService is a mock implementation of CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, userID uint) (*carts.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carts.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*carts.CartItem, error) {
	args := m.Called(ctx, userID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carts.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*carts.CartItem, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carts.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}
