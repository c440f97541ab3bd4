package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// CartRepositoryImpl implements domain.CartRepository using GORM
type CartRepositoryImpl struct {
	db *gorm.DB
}

// DBCart represents the database model for Cart
type DBCart struct {
	ID        string       `gorm:"primaryKey;size:36"`
	UserID    string       `gorm:"uniqueIndex;size:36"`
	Items     []DBCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBCart) TableName() string {
	return "carts"
}

// DBCartItem represents the database model for CartItem
type DBCartItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	CartID    string `gorm:"index;size:36"`
	ProductID string `gorm:"size:36"`
	Quantity  int
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBCartItem) TableName() string {
	return "cart_items"
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &CartRepositoryImpl{db: db}
}

// Create implements domain.CartRepository
func (r *CartRepositoryImpl) Create(ctx context.Context, cart *domain.Cart) error {
	return r.db.WithContext(ctx).Create(r.domainToDB(cart)).Error
}

// FindByID implements domain.CartRepository
func (r *CartRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Cart, error) {
	var dbCart DBCart
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&dbCart).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCart), nil
}

// FindByUserID implements domain.CartRepository
func (r *CartRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	var dbCart DBCart
	err := r.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&dbCart).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCart), nil
}

// AddItem implements domain.CartRepository
func (r *CartRepositoryImpl) AddItem(ctx context.Context, cartID string, item *domain.CartItem) error {
	dbItem := &DBCartItem{
		ID:        item.ID,
		CartID:    cartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dbItem).Error; err != nil {
			return err
		}
		return r.touch(tx, cartID)
	})
}

// UpdateItem implements domain.CartRepository
func (r *CartRepositoryImpl) UpdateItem(ctx context.Context, cartID, itemID string, quantity int, price int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&DBCartItem{}).
			Where("id = ? AND cart_id = ?", itemID, cartID).
			Updates(map[string]interface{}{"quantity": quantity, "price": price})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCartItemNotFound
		}
		return r.touch(tx, cartID)
	})
}

// RemoveItem implements domain.CartRepository
func (r *CartRepositoryImpl) RemoveItem(ctx context.Context, cartID, itemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&DBCartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCartItemNotFound
		}
		return r.touch(tx, cartID)
	})
}

// Clear implements domain.CartRepository
func (r *CartRepositoryImpl) Clear(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&DBCartItem{}).Error; err != nil {
			return err
		}
		return r.touch(tx, cartID)
	})
}

func (r *CartRepositoryImpl) touch(tx *gorm.DB, cartID string) error {
	return tx.Model(&DBCart{}).Where("id = ?", cartID).Update("updated_at", time.Now()).Error
}

func (r *CartRepositoryImpl) domainToDB(cart *domain.Cart) *DBCart {
	dbCart := &DBCart{
		ID:        cart.ID,
		UserID:    cart.UserID,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		dbCart.Items = append(dbCart.Items, DBCartItem{
			ID:        item.ID,
			CartID:    cart.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return dbCart
}

func (r *CartRepositoryImpl) dbToDomain(dbCart *DBCart) *domain.Cart {
	cart := &domain.Cart{
		ID:        dbCart.ID,
		UserID:    dbCart.UserID,
		Items:     []domain.CartItem{},
		CreatedAt: dbCart.CreatedAt,
		UpdatedAt: dbCart.UpdatedAt,
	}
	for _, item := range dbCart.Items {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return cart
}
