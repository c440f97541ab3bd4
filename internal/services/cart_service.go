package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// CartServiceImpl implements domain.CartService
type CartServiceImpl struct {
	cartRepo    domain.CartRepository
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	userRepo    domain.UserRepository
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo domain.CartRepository,
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	userRepo domain.UserRepository,
) domain.CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Create implements domain.CartService. One open cart per user.
func (s *CartServiceImpl) Create(ctx context.Context, userID string) (*domain.Cart, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if existing, err := s.cartRepo.FindByUserID(ctx, userID); err == nil && existing != nil {
		return nil, domain.ErrCartExists
	}

	now := time.Now().UTC()
	cart := &domain.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// Get implements domain.CartService
func (s *CartServiceImpl) Get(ctx context.Context, id string) (*domain.Cart, error) {
	return s.cartRepo.FindByID(ctx, id)
}

// GetByUser implements domain.CartService
func (s *CartServiceImpl) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.cartRepo.FindByUserID(ctx, userID)
}

// AddItem implements domain.CartService
func (s *CartServiceImpl) AddItem(ctx context.Context, cartID string, input domain.CartItemInput) (*domain.Cart, error) {
	if _, err := s.cartRepo.FindByID(ctx, cartID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.CartItem{
		ID:        uuid.NewString(),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.AddItem(ctx, cartID, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return s.cartRepo.FindByID(ctx, cartID)
}

// UpdateItem implements domain.CartService
func (s *CartServiceImpl) UpdateItem(ctx context.Context, cartID, itemID string, input domain.CartItemInput) (*domain.Cart, error) {
	if err := s.cartRepo.UpdateItem(ctx, cartID, itemID, input.Quantity, input.Price); err != nil {
		return nil, err
	}
	return s.cartRepo.FindByID(ctx, cartID)
}

// RemoveItem implements domain.CartService
func (s *CartServiceImpl) RemoveItem(ctx context.Context, cartID, itemID string) (*domain.Cart, error) {
	if err := s.cartRepo.RemoveItem(ctx, cartID, itemID); err != nil {
		return nil, err
	}
	return s.cartRepo.FindByID(ctx, cartID)
}

// Checkout implements domain.CartService. Every line item's product
// must still exist; the resulting order is created completed (payment
// processing happens outside this service) and the cart is emptied.
func (s *CartServiceImpl) Checkout(ctx context.Context, cartID string) (*domain.Order, error) {
	cart, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var total int64
	orderItems := make([]domain.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if _, err := s.productRepo.FindByID(ctx, item.ProductID); err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return nil, domain.ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to look up product: %w", err)
		}
		total += item.Price * int64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			ID:        uuid.NewString(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    cart.UserID,
		Status:    domain.OrderStatusCompleted,
		Total:     total,
		Items:     orderItems,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cartRepo.Clear(ctx, cartID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	return order, nil
}
