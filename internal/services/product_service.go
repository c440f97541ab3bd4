package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// ProductServiceImpl implements domain.ProductService
type ProductServiceImpl struct {
	productRepo domain.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo domain.ProductRepository) domain.ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

// Get implements domain.ProductService
func (s *ProductServiceImpl) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List implements domain.ProductService
func (s *ProductServiceImpl) List(ctx context.Context, name string) ([]*domain.Product, error) {
	products, err := s.productRepo.FindMany(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Create implements domain.ProductService
func (s *ProductServiceImpl) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update implements domain.ProductService
func (s *ProductServiceImpl) Update(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price > 0 {
		product.Price = input.Price
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// Delete implements domain.ProductService
func (s *ProductServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
