package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/VersaiAcademy/ShriFurnitureVillage/catalog"
	productControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/product"
)

// SetupCatalogRoutes registers the public storefront browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, products *catalog.Service) {
	r.GET("/products", productControllers.GetProducts(products))
	r.GET("/products/:id", productControllers.GetProductByID(products))
	r.GET("/categories", productControllers.GetCategories(products))
	r.GET("/categories/:slug", productControllers.GetCategoryBySlug(products))
}
