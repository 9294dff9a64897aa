// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lastbite/lastbite-backend/internal/domain/catalog"
)

// CatalogHandler handles deal catalog endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// dealView is the API shape of a deal, with the discount precomputed
type dealView struct {
	catalog.Deal
	DiscountPercent int   `json:"discount_percent"`
	SavingsCents    int64 `json:"savings_cents"`
}

func toDealViews(deals []catalog.Deal) []dealView {
	views := make([]dealView, 0, len(deals))
	for _, d := range deals {
		views = append(views, dealView{
			Deal:            d,
			DiscountPercent: d.DiscountPercent(),
			SavingsCents:    d.SavingsCents(),
		})
	}
	return views
}

// GetDeals handles GET /deals
func (h *CatalogHandler) GetDeals(c *gin.Context) {
	query := catalog.Query{
		Category:     c.Query("category"),
		Partner:      c.Query("partner"),
		Tag:          c.Query("tag"),
		Search:       c.Query("q"),
		DeliveryOnly: c.Query("delivery") == "true",
		Sort:         c.DefaultQuery("sort", catalog.SortRecommended),
		Now:          time.Now(),
	}

	deals := h.catalogService.ListDeals(query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Deals retrieved successfully",
		"data": gin.H{
			"deals": toDealViews(deals),
			"total": len(deals),
		},
	})
}

// GetDeal handles GET /deals/:id
func (h *CatalogHandler) GetDeal(c *gin.Context) {
	deal, ok := h.catalogService.GetDeal(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Deal not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deal retrieved successfully",
		"data": dealView{
			Deal:            deal,
			DiscountPercent: deal.DiscountPercent(),
			SavingsCents:    deal.SavingsCents(),
		},
	})
}

// GetPartners handles GET /deals/partners
func (h *CatalogHandler) GetPartners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Partners retrieved successfully",
		"data":    h.catalogService.Partners(),
	})
}

// GetCategories handles GET /deals/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalogService.Categories(),
	})
}
