package services

import (
	"context"
	"fmt"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// OrderServiceImpl implements domain.OrderService
type OrderServiceImpl struct {
	orderRepo domain.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo domain.OrderRepository) domain.OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo}
}

// Get implements domain.OrderService
func (s *OrderServiceImpl) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// ListByUser implements domain.OrderService. An empty userID lists
// every order; callers gate that behind the admin role.
func (s *OrderServiceImpl) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
