package mocks

import (
	"context"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// MockOrderRepository implements domain.OrderRepository for testing
type MockOrderRepository struct {
	CreateFunc       func(ctx context.Context, order *domain.Order) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Order, error)
	FindByUserIDFunc func(ctx context.Context, userID string) ([]*domain.Order, error)
}

// NewMockOrderRepository creates a new MockOrderRepository with default behaviors
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Create persists an order
func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return nil
}

// FindByID looks up an order
func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrOrderNotFound
}

// FindByUserID lists a user's orders
func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []*domain.Order{}, nil
}
