// internal/interfaces/http/handlers/impact.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lastbite/lastbite-backend/internal/domain/checkout"
	"github.com/lastbite/lastbite-backend/internal/domain/impact"
)

// ImpactHandler handles impact totals endpoints
type ImpactHandler struct {
	checkoutService *checkout.Service
}

// NewImpactHandler creates a new impact handler
func NewImpactHandler(checkoutService *checkout.Service) *ImpactHandler {
	return &ImpactHandler{
		checkoutService: checkoutService,
	}
}

// GetImpact handles GET /impact
func (h *ImpactHandler) GetImpact(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	scope := impact.Scope(c.DefaultQuery("scope", string(impact.ScopeUser)))
	totals, err := h.checkoutService.GetImpactTotals(c.Request.Context(), sessionID, scope)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid impact scope",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Impact totals retrieved successfully",
		"data": gin.H{
			"scope":  scope,
			"totals": totals,
		},
	})
}

// ResetImpact handles POST /impact/reset
func (h *ImpactHandler) ResetImpact(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	h.checkoutService.ResetImpact(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Impact reset successfully",
	})
}
