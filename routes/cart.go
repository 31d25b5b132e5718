package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VersaiAcademy/ShriFurnitureVillage/cart"
	"github.com/VersaiAcademy/ShriFurnitureVillage/catalog"
	cartControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/cart"
	checkoutControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/checkout"
	"github.com/VersaiAcademy/ShriFurnitureVillage/middleware"
)

// SetupCartRoutes registers the session cart and checkout endpoints.
// Both require a token; guest tokens qualify, so guest checkout works.
func SetupCartRoutes(r *gin.Engine, carts *cart.Manager, products *catalog.Service, flows *checkoutControllers.Flows) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(carts))
		cartGroup.POST("/", cartControllers.AddCartItem(carts, products))
		cartGroup.PUT("/:variant_id", cartControllers.UpdateCartItem(carts))
		cartGroup.DELETE("/:variant_id", cartControllers.DeleteCartItem(carts))
		cartGroup.DELETE("/", cartControllers.ClearCart(carts))
	}

	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateToken)
	{
		checkoutGroup.POST("/", checkoutControllers.Submit(flows))
	}
}
