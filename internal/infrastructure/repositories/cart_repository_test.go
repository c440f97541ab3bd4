package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

func testCartItem(id, productID string, quantity int, price int64) *domain.CartItem {
	now := time.Now().UTC()
	return &domain.CartItem{
		ID:        id,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCartRepositoryImpl_Items(t *testing.T) {
	repo := NewCartRepository(setupTestDB(t))
	ctx := context.Background()

	cart := &domain.Cart{ID: "cart-1", UserID: "user-1", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if err := repo.Create(ctx, cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.AddItem(ctx, "cart-1", testCartItem("item-1", "prod-1", 2, 500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.AddItem(ctx, "cart-1", testCartItem("item-2", "prod-2", 1, 1250)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(found.Items))
	}

	if err := repo.UpdateItem(ctx, "cart-1", "item-1", 5, 450); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpdateItem(ctx, "cart-1", "missing", 1, 1); err != domain.ErrCartItemNotFound {
		t.Errorf("expected ErrCartItemNotFound, got %v", err)
	}

	if err := repo.RemoveItem(ctx, "cart-1", "item-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err = repo.FindByID(ctx, "cart-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(found.Items))
	}
	if found.Items[0].Quantity != 5 || found.Items[0].Price != 450 {
		t.Errorf("expected updated quantity/price, got %d/%d", found.Items[0].Quantity, found.Items[0].Price)
	}

	if err := repo.Clear(ctx, "cart-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found, err = repo.FindByID(ctx, "cart-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found.Items) != 0 {
		t.Errorf("expected an empty cart after clear, got %d items", len(found.Items))
	}
}

func TestCartRepositoryImpl_NotFound(t *testing.T) {
	repo := NewCartRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, "missing"); err != domain.ErrCartNotFound {
		t.Errorf("expected ErrCartNotFound, got %v", err)
	}
	if _, err := repo.FindByUserID(ctx, "missing"); err != domain.ErrCartNotFound {
		t.Errorf("expected ErrCartNotFound, got %v", err)
	}
}
