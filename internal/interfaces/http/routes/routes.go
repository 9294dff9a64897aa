// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lastbite/lastbite-backend/internal/domain/cart"
	"github.com/lastbite/lastbite-backend/internal/domain/catalog"
	"github.com/lastbite/lastbite-backend/internal/domain/checkout"
	"github.com/lastbite/lastbite-backend/internal/domain/profile"
	"github.com/lastbite/lastbite-backend/internal/interfaces/http/handlers"
)

// Deps carries the wired services the routes need
type Deps struct {
	Catalog  *catalog.Service
	Cart     *cart.Service
	Checkout *checkout.Service
	Profile  *profile.Service
}

// SetupRoutes registers all API routes on the given group
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	setupCatalogRoutes(rg, deps)
	setupCartRoutes(rg, deps)
	setupCheckoutRoutes(rg, deps)
	setupProfileRoutes(rg, deps)
}

// setupCatalogRoutes sets up deal catalog routes
func setupCatalogRoutes(rg *gin.RouterGroup, deps Deps) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)

	deals := rg.Group("/deals")
	{
		deals.GET("", catalogHandler.GetDeals)
		deals.GET("/partners", catalogHandler.GetPartners)
		deals.GET("/categories", catalogHandler.GetCategories)
		deals.GET("/:id", catalogHandler.GetDeal)
	}
}

// setupCartRoutes sets up cart routes
func setupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Cart)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCount)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items", cartHandler.UpdateItem)
		cartGroup.DELETE("/items", cartHandler.RemoveItem)
		cartGroup.POST("/items/increment", cartHandler.IncrementItem)
		cartGroup.POST("/items/decrement", cartHandler.DecrementItem)
		cartGroup.POST("/items/mode", cartHandler.ChangeMode)
	}
}

// setupCheckoutRoutes sets up checkout, order history and impact routes
func setupCheckoutRoutes(rg *gin.RouterGroup, deps Deps) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout)
	impactHandler := handlers.NewImpactHandler(deps.Checkout)

	rg.POST("/checkout", checkoutHandler.Checkout)
	rg.GET("/orders", checkoutHandler.GetOrders)

	impactGroup := rg.Group("/impact")
	{
		impactGroup.GET("", impactHandler.GetImpact)
		impactGroup.POST("/reset", impactHandler.ResetImpact)
	}
}

// setupProfileRoutes sets up profile and delivery area routes
func setupProfileRoutes(rg *gin.RouterGroup, deps Deps) {
	profileHandler := handlers.NewProfileHandler(deps.Profile)

	profileGroup := rg.Group("/profile")
	{
		profileGroup.GET("", profileHandler.GetProfile)
		profileGroup.DELETE("", profileHandler.ClearProfile)
		profileGroup.PUT("/postal", profileHandler.UpdatePostal)
		profileGroup.POST("/delivery-check", profileHandler.CheckDeliveryArea)
	}
}
