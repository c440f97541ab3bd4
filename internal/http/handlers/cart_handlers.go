package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// CartHandlers handles shopping cart HTTP requests
type CartHandlers struct {
	cartSvc domain.CartService
	audit   domain.AuditLogger
}

// NewCartHandlers creates new cart handlers
func NewCartHandlers(cartSvc domain.CartService, audit domain.AuditLogger) *CartHandlers {
	return &CartHandlers{
		cartSvc: cartSvc,
		audit:   audit,
	}
}

// CartItemRequest represents a cart line-item create request
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Price     int64  `json:"price" binding:"required,min=0"`
}

// UpdateCartItemRequest represents a cart line-item update request. The
// line already names its product; only quantity and price are mutable.
type UpdateCartItemRequest struct {
	Quantity int   `json:"quantity" binding:"required,min=1"`
	Price    int64 `json:"price" binding:"required,min=0"`
}

// Create handles cart creation for the acting user
func (h *CartHandlers) Create(c *gin.Context) {
	actor := actorClaims(c)

	cart, err := h.cartSvc.Create(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": cart})
}

// GetOwn handles fetching the acting user's cart
func (h *CartHandlers) GetOwn(c *gin.Context) {
	actor := actorClaims(c)

	cart, err := h.cartSvc.GetByUser(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// Get handles fetching a cart by id. Owner or admin only.
func (h *CartHandlers) Get(c *gin.Context) {
	cart, ok := h.authorizeCart(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// AddItem handles adding a line item to a cart
func (h *CartHandlers) AddItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.authorizeCart(c); !ok {
		return
	}

	cart, err := h.cartSvc.AddItem(c.Request.Context(), c.Param("cartid"), domain.CartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// UpdateItem handles changing a line item's quantity or price
func (h *CartHandlers) UpdateItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.authorizeCart(c); !ok {
		return
	}

	cart, err := h.cartSvc.UpdateItem(c.Request.Context(), c.Param("cartid"), c.Param("itemid"), domain.CartItemInput{
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// RemoveItem handles removing a line item from a cart
func (h *CartHandlers) RemoveItem(c *gin.Context) {
	if _, ok := h.authorizeCart(c); !ok {
		return
	}

	cart, err := h.cartSvc.RemoveItem(c.Request.Context(), c.Param("cartid"), c.Param("itemid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cart})
}

// Checkout handles converting a cart into a completed order
func (h *CartHandlers) Checkout(c *gin.Context) {
	if _, ok := h.authorizeCart(c); !ok {
		return
	}

	order, err := h.cartSvc.Checkout(c.Request.Context(), c.Param("cartid"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.OrderCreatedEvent, order.UserID).
		WithMetadata("order_id", order.ID).
		WithMetadata("total", order.Total))

	c.JSON(http.StatusCreated, gin.H{"data": order})
}

// authorizeCart resolves the :cartid parameter and rejects anyone who is
// neither the cart's owner nor an admin. A false return means the
// response has already been written.
func (h *CartHandlers) authorizeCart(c *gin.Context) (*domain.Cart, bool) {
	actor := actorClaims(c)

	cart, err := h.cartSvc.Get(c.Request.Context(), c.Param("cartid"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	if cart.UserID != actor.UserID && !actor.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}

	return cart, true
}
