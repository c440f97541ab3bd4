package mocks

import (
	"context"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// MockCartRepository implements domain.CartRepository for testing
type MockCartRepository struct {
	CreateFunc       func(ctx context.Context, cart *domain.Cart) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Cart, error)
	FindByUserIDFunc func(ctx context.Context, userID string) (*domain.Cart, error)
	AddItemFunc      func(ctx context.Context, cartID string, item *domain.CartItem) error
	UpdateItemFunc   func(ctx context.Context, cartID, itemID string, quantity int, price int64) error
	RemoveItemFunc   func(ctx context.Context, cartID, itemID string) error
	ClearFunc        func(ctx context.Context, cartID string) error
}

// NewMockCartRepository creates a new MockCartRepository with default behaviors
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

// Create persists a cart
func (m *MockCartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cart)
	}
	return nil
}

// FindByID looks up a cart
func (m *MockCartRepository) FindByID(ctx context.Context, id string) (*domain.Cart, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCartNotFound
}

// FindByUserID looks up a user's cart
func (m *MockCartRepository) FindByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrCartNotFound
}

// AddItem appends a line item
func (m *MockCartRepository) AddItem(ctx context.Context, cartID string, item *domain.CartItem) error {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, cartID, item)
	}
	return nil
}

// UpdateItem mutates a line item
func (m *MockCartRepository) UpdateItem(ctx context.Context, cartID, itemID string, quantity int, price int64) error {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, cartID, itemID, quantity, price)
	}
	return nil
}

// RemoveItem removes a line item
func (m *MockCartRepository) RemoveItem(ctx context.Context, cartID, itemID string) error {
	if m.RemoveItemFunc != nil {
		return m.RemoveItemFunc(ctx, cartID, itemID)
	}
	return nil
}

// Clear empties a cart
func (m *MockCartRepository) Clear(ctx context.Context, cartID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, cartID)
	}
	return nil
}
