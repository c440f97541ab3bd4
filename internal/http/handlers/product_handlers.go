package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// ProductHandlers handles catalogue HTTP requests
type ProductHandlers struct {
	productSvc domain.ProductService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(productSvc domain.ProductService) *ProductHandlers {
	return &ProductHandlers{productSvc: productSvc}
}

// ProductRequest represents a product create or update request.
// Price is in minor currency units.
type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price" binding:"required,min=0"`
}

// List handles product listing with an optional name filter
func (h *ProductHandlers) List(c *gin.Context) {
	products, err := h.productSvc.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// Get handles fetching a single product
func (h *ProductHandlers) Get(c *gin.Context) {
	product, err := h.productSvc.Get(c.Request.Context(), c.Param("productid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Create handles product creation. Admin only, enforced by middleware.
func (h *ProductHandlers) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productSvc.Create(c.Request.Context(), domain.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// Update handles product mutation. Admin only, enforced by middleware.
func (h *ProductHandlers) Update(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productSvc.Update(c.Request.Context(), c.Param("productid"), domain.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Delete handles product removal. Admin only, enforced by middleware.
func (h *ProductHandlers) Delete(c *gin.Context) {
	if err := h.productSvc.Delete(c.Request.Context(), c.Param("productid")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Product deleted successfully",
		},
	})
}
