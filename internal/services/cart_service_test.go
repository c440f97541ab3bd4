package services

import (
	"context"
	"testing"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/mocks"
)

func cartWithItems(items ...domain.CartItem) *domain.Cart {
	return &domain.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items:  items,
	}
}

func TestCartServiceImpl_Create(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockCartRepository)
		expectedError error
	}{
		{
			name:   "successful creation",
			userID: "user-1",
			setupMocks: func(userRepo *mocks.MockUserRepository, cartRepo *mocks.MockCartRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
		},
		{
			name:          "unknown user",
			userID:        "missing",
			setupMocks:    func(userRepo *mocks.MockUserRepository, cartRepo *mocks.MockCartRepository) {},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:   "user already has an open cart",
			userID: "user-1",
			setupMocks: func(userRepo *mocks.MockUserRepository, cartRepo *mocks.MockCartRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				cartRepo.FindByUserIDFunc = func(ctx context.Context, userID string) (*domain.Cart, error) {
					return cartWithItems(), nil
				}
			},
			expectedError: domain.ErrCartExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			cartRepo := mocks.NewMockCartRepository()
			tt.setupMocks(userRepo, cartRepo)

			svc := NewCartService(cartRepo, mocks.NewMockOrderRepository(), mocks.NewMockProductRepository(), userRepo)
			cart, err := svc.Create(context.Background(), tt.userID)

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cart.ID == "" {
				t.Error("expected a generated cart id")
			}
			if cart.UserID != tt.userID {
				t.Errorf("expected owner %s, got %s", tt.userID, cart.UserID)
			}
			if len(cart.Items) != 0 {
				t.Error("a new cart must start empty")
			}
		})
	}
}

func TestCartServiceImpl_AddItem(t *testing.T) {
	cartRepo := mocks.NewMockCartRepository()
	cartRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Cart, error) {
		return cartWithItems(), nil
	}

	var added *domain.CartItem
	cartRepo.AddItemFunc = func(ctx context.Context, cartID string, item *domain.CartItem) error {
		added = item
		return nil
	}

	svc := NewCartService(cartRepo, mocks.NewMockOrderRepository(), mocks.NewMockProductRepository(), mocks.NewMockUserRepository())
	_, err := svc.AddItem(context.Background(), "cart-1", domain.CartItemInput{
		ProductID: "product-1",
		Quantity:  3,
		Price:     1999,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if added == nil {
		t.Fatal("expected the item to be persisted")
	}
	if added.ID == "" {
		t.Error("expected a generated item id")
	}
	if added.ProductID != "product-1" || added.Quantity != 3 || added.Price != 1999 {
		t.Errorf("unexpected persisted item: %+v", added)
	}
}

func TestCartServiceImpl_AddItem_UnknownCart(t *testing.T) {
	svc := NewCartService(mocks.NewMockCartRepository(), mocks.NewMockOrderRepository(), mocks.NewMockProductRepository(), mocks.NewMockUserRepository())
	_, err := svc.AddItem(context.Background(), "missing", domain.CartItemInput{ProductID: "product-1", Quantity: 1})
	if err != domain.ErrCartNotFound {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestCartServiceImpl_Checkout(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockCartRepository, *mocks.MockProductRepository, *mocks.MockOrderRepository)
		expectedError error
		validateOrder func(t *testing.T, order *domain.Order)
	}{
		{
			name: "successful checkout totals every line",
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository) {
				cartRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Cart, error) {
					return cartWithItems(
						domain.CartItem{ID: "item-1", ProductID: "product-1", Quantity: 2, Price: 1000},
						domain.CartItem{ID: "item-2", ProductID: "product-2", Quantity: 1, Price: 2500},
					), nil
				}
				productRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Product, error) {
					return &domain.Product{ID: id}, nil
				}
			},
			validateOrder: func(t *testing.T, order *domain.Order) {
				if order.Total != 4500 {
					t.Errorf("expected total 4500, got %d", order.Total)
				}
				if order.Status != domain.OrderStatusCompleted {
					t.Errorf("expected status %s, got %s", domain.OrderStatusCompleted, order.Status)
				}
				if order.UserID != "user-1" {
					t.Errorf("expected the order to belong to the cart owner, got %s", order.UserID)
				}
				if len(order.Items) != 2 {
					t.Fatalf("expected 2 order items, got %d", len(order.Items))
				}
				if order.Items[0].ProductID != "product-1" || order.Items[0].Quantity != 2 {
					t.Errorf("unexpected first order item: %+v", order.Items[0])
				}
			},
		},
		{
			name: "empty cart",
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository) {
				cartRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Cart, error) {
					return cartWithItems(), nil
				}
			},
			expectedError: domain.ErrEmptyCart,
		},
		{
			name:          "unknown cart",
			setupMocks:    func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository) {},
			expectedError: domain.ErrCartNotFound,
		},
		{
			name: "line item references a deleted product",
			setupMocks: func(cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, orderRepo *mocks.MockOrderRepository) {
				cartRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Cart, error) {
					return cartWithItems(
						domain.CartItem{ID: "item-1", ProductID: "gone", Quantity: 1, Price: 1000},
					), nil
				}
			},
			expectedError: domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := mocks.NewMockCartRepository()
			productRepo := mocks.NewMockProductRepository()
			orderRepo := mocks.NewMockOrderRepository()
			tt.setupMocks(cartRepo, productRepo, orderRepo)

			svc := NewCartService(cartRepo, orderRepo, productRepo, mocks.NewMockUserRepository())
			order, err := svc.Checkout(context.Background(), "cart-1")

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateOrder != nil {
				tt.validateOrder(t, order)
			}
		})
	}
}

func TestCartServiceImpl_Checkout_ClearsCart(t *testing.T) {
	cartRepo := mocks.NewMockCartRepository()
	cartRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Cart, error) {
		return cartWithItems(
			domain.CartItem{ID: "item-1", ProductID: "product-1", Quantity: 1, Price: 500},
		), nil
	}
	cleared := ""
	cartRepo.ClearFunc = func(ctx context.Context, cartID string) error {
		cleared = cartID
		return nil
	}

	productRepo := mocks.NewMockProductRepository()
	productRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Product, error) {
		return &domain.Product{ID: id}, nil
	}

	svc := NewCartService(cartRepo, mocks.NewMockOrderRepository(), productRepo, mocks.NewMockUserRepository())
	if _, err := svc.Checkout(context.Background(), "cart-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cleared != "cart-1" {
		t.Errorf("expected cart-1 to be emptied after checkout, got %q", cleared)
	}
}
