package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product
type DBProduct struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"index;size:255"`
	Description string
	Price       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBProduct) TableName() string {
	return "products"
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(r.domainToDB(product)).Error
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct), nil
}

// FindMany implements domain.ProductRepository. An empty name lists the
// whole catalogue.
func (r *ProductRepositoryImpl) FindMany(ctx context.Context, name string) ([]*domain.Product, error) {
	query := r.db.WithContext(ctx)
	if name != "" {
		query = query.Where("name = ?", name)
	}

	var dbProducts []DBProduct
	if err := query.Find(&dbProducts).Error; err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, r.dbToDomain(&dbProducts[i]))
	}
	return products, nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(product)).Error
}

// Delete implements domain.ProductRepository
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) domainToDB(product *domain.Product) *DBProduct {
	return &DBProduct{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func (r *ProductRepositoryImpl) dbToDomain(dbProduct *DBProduct) *domain.Product {
	return &domain.Product{
		ID:          dbProduct.ID,
		Name:        dbProduct.Name,
		Description: dbProduct.Description,
		Price:       dbProduct.Price,
		CreatedAt:   dbProduct.CreatedAt,
		UpdatedAt:   dbProduct.UpdatedAt,
	}
}
