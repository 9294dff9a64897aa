// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lastbite/lastbite-backend/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// cartItemRequest identifies a line and optionally carries a quantity
type cartItemRequest struct {
	DealID   string `json:"deal_id" binding:"required"`
	Mode     string `json:"mode" binding:"required"`
	Quantity int    `json:"quantity"`
}

// changeModeRequest switches a line between fulfillment modes
type changeModeRequest struct {
	DealID string `json:"deal_id" binding:"required"`
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
}

// respondCartError maps cart service errors to HTTP statuses
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrUnknownDeal), errors.Is(err, cart.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrDeliveryUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrInvalidMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	totals := h.cartService.ComputeTotals(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    totals,
	})
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cartService.ItemCount(c.Request.Context(), sessionID),
		},
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	mode, err := cart.ParseMode(req.Mode)
	if err != nil {
		respondCartError(c, err)
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := h.cartService.AddLine(c.Request.Context(), sessionID, req.DealID, mode, quantity); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cartService.ComputeTotals(c.Request.Context(), sessionID),
	})
}

// UpdateItem handles PUT /cart/items
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	mode, err := cart.ParseMode(req.Mode)
	if err != nil {
		respondCartError(c, err)
		return
	}

	if err := h.cartService.SetQuantity(c.Request.Context(), sessionID, req.DealID, mode, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cartService.ComputeTotals(c.Request.Context(), sessionID),
	})
}

// IncrementItem handles POST /cart/items/increment
func (h *CartHandler) IncrementItem(c *gin.Context) {
	h.adjustItem(c, h.cartService.IncrementLine, "Cart item incremented successfully")
}

// DecrementItem handles POST /cart/items/decrement
func (h *CartHandler) DecrementItem(c *gin.Context) {
	h.adjustItem(c, h.cartService.DecrementLine, "Cart item decremented successfully")
}

func (h *CartHandler) adjustItem(c *gin.Context, adjust func(ctx context.Context, sessionID, dealID string, mode cart.FulfillmentMode) error, message string) {
	sessionID := getOrCreateSessionID(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	mode, err := cart.ParseMode(req.Mode)
	if err != nil {
		respondCartError(c, err)
		return
	}

	if err := adjust(c.Request.Context(), sessionID, req.DealID, mode); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    h.cartService.ComputeTotals(c.Request.Context(), sessionID),
	})
}

// ChangeMode handles POST /cart/items/mode
func (h *CartHandler) ChangeMode(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req changeModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	from, err := cart.ParseMode(req.From)
	if err != nil {
		respondCartError(c, err)
		return
	}
	to, err := cart.ParseMode(req.To)
	if err != nil {
		respondCartError(c, err)
		return
	}

	if err := h.cartService.ChangeMode(c.Request.Context(), sessionID, req.DealID, from, to); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item mode changed successfully",
		"data":    h.cartService.ComputeTotals(c.Request.Context(), sessionID),
	})
}

// RemoveItem handles DELETE /cart/items
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	mode, err := cart.ParseMode(req.Mode)
	if err != nil {
		respondCartError(c, err)
		return
	}

	if err := h.cartService.RemoveLine(c.Request.Context(), sessionID, req.DealID, mode); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cartService.ComputeTotals(c.Request.Context(), sessionID),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	h.cartService.Clear(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.cartService.ComputeTotals(c.Request.Context(), sessionID),
	})
}
