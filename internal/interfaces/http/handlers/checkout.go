// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lastbite/lastbite-backend/internal/domain/checkout"
)

// CheckoutHandler handles checkout and order history endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	o, err := h.checkoutService.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to complete checkout",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checkout completed successfully",
		"data":    o,
	})
}

// GetOrders handles GET /orders
func (h *CheckoutHandler) GetOrders(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	history := h.checkoutService.GetOrderHistory(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": history,
			"total":  len(history),
		},
	})
}
