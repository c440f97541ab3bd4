package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// OrderRepositoryImpl implements domain.OrderRepository using GORM
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// DBOrder represents the database model for Order
type DBOrder struct {
	ID        string        `gorm:"primaryKey;size:36"`
	UserID    string        `gorm:"index;size:36"`
	Status    string        `gorm:"size:32"`
	Total     int64
	Items     []DBOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBOrder) TableName() string {
	return "orders"
}

// DBOrderItem represents the database model for OrderItem
type DBOrderItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	OrderID   string `gorm:"index;size:36"`
	ProductID string `gorm:"size:36"`
	Quantity  int
	Price     int64
}

// TableName returns the table name for GORM
func (DBOrderItem) TableName() string {
	return "order_items"
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create implements domain.OrderRepository
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(r.domainToDB(order)).Error
}

// FindByID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var dbOrder DBOrder
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&dbOrder).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbOrder), nil
}

// FindByUserID implements domain.OrderRepository
func (r *OrderRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var dbOrders []DBOrder
	if err := query.Find(&dbOrders).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(dbOrders))
	for i := range dbOrders {
		orders = append(orders, r.dbToDomain(&dbOrders[i]))
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) domainToDB(order *domain.Order) *DBOrder {
	dbOrder := &DBOrder{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
	for _, item := range order.Items {
		dbOrder.Items = append(dbOrder.Items, DBOrderItem{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return dbOrder
}

func (r *OrderRepositoryImpl) dbToDomain(dbOrder *DBOrder) *domain.Order {
	order := &domain.Order{
		ID:        dbOrder.ID,
		UserID:    dbOrder.UserID,
		Status:    dbOrder.Status,
		Total:     dbOrder.Total,
		Items:     []domain.OrderItem{},
		CreatedAt: dbOrder.CreatedAt,
		UpdatedAt: dbOrder.UpdatedAt,
	}
	for _, item := range dbOrder.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return order
}
