// internal/interfaces/http/handlers/profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lastbite/lastbite-backend/internal/domain/profile"
)

// ProfileHandler handles profile and delivery area endpoints
type ProfileHandler struct {
	profileService *profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// postalRequest carries a postal code to save or check
type postalRequest struct {
	Postal string `json:"postal" binding:"required"`
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	p := h.profileService.Get(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"profile":  p,
			"in_pilot": h.profileService.InPilot(p.Postal),
		},
	})
}

// UpdatePostal handles PUT /profile/postal
func (h *ProfileHandler) UpdatePostal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req postalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	p := h.profileService.SetPostal(c.Request.Context(), sessionID, req.Postal)

	c.JSON(http.StatusOK, gin.H{
		"message": "Postal code updated successfully",
		"data": gin.H{
			"profile":  p,
			"in_pilot": h.profileService.InPilot(p.Postal),
		},
	})
}

// CheckDeliveryArea handles POST /profile/delivery-check
func (h *ProfileHandler) CheckDeliveryArea(c *gin.Context) {
	var req postalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery area checked successfully",
		"data": gin.H{
			"postal":   req.Postal,
			"in_pilot": h.profileService.InPilot(req.Postal),
		},
	})
}

// ClearProfile handles DELETE /profile
func (h *ProfileHandler) ClearProfile(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	h.profileService.Clear(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile cleared successfully",
	})
}
