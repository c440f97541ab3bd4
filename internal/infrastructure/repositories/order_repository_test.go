package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

func testOrder(id, userID string, items ...domain.OrderItem) *domain.Order {
	now := time.Now().UTC()
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return &domain.Order{
		ID:        id,
		UserID:    userID,
		Status:    domain.OrderStatusCompleted,
		Total:     total,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	order := testOrder("order-1", "user-1",
		domain.OrderItem{ID: "line-1", ProductID: "product-1", Quantity: 2, Price: 1000},
		domain.OrderItem{ID: "line-2", ProductID: "product-2", Quantity: 1, Price: 2500},
	)
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.UserID)
	assert.Equal(t, domain.OrderStatusCompleted, found.Status)
	assert.Equal(t, int64(4500), found.Total)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "product-1", found.Items[0].ProductID)
}

func TestOrderRepositoryImpl_FindMissing(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepositoryImpl_FindByUserID(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testOrder("order-1", "user-1",
		domain.OrderItem{ID: "line-1", ProductID: "product-1", Quantity: 1, Price: 1000})))
	require.NoError(t, repo.Create(ctx, testOrder("order-2", "user-1",
		domain.OrderItem{ID: "line-2", ProductID: "product-2", Quantity: 1, Price: 2000})))
	require.NoError(t, repo.Create(ctx, testOrder("order-3", "user-2",
		domain.OrderItem{ID: "line-3", ProductID: "product-1", Quantity: 1, Price: 1000})))

	mine, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	// Empty user id lists every order (the admin wildcard query)
	all, err := repo.FindByUserID(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.FindByUserID(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
