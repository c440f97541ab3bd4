package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// OrderHandlers handles order HTTP requests
type OrderHandlers struct {
	orderSvc domain.OrderService
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(orderSvc domain.OrderService) *OrderHandlers {
	return &OrderHandlers{orderSvc: orderSvc}
}

// List handles order listing. Users see their own orders; admins may
// query any user with ?userid=<id> or every order with ?userid=*.
func (h *OrderHandlers) List(c *gin.Context) {
	actor := actorClaims(c)

	target := actor.UserID
	if query := c.Query("userid"); query != "" && query != actor.UserID {
		if !actor.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		if query == "*" {
			target = ""
		} else {
			target = query
		}
	}

	orders, err := h.orderSvc.ListByUser(c.Request.Context(), target)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// Get handles fetching a single order. Owner or admin only.
func (h *OrderHandlers) Get(c *gin.Context) {
	actor := actorClaims(c)

	order, err := h.orderSvc.Get(c.Request.Context(), c.Param("orderid"))
	if err != nil {
		respondError(c, err)
		return
	}

	if order.UserID != actor.UserID && !actor.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}
