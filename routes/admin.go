package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaiAcademy/ShriFurnitureVillage/catalog"
	orderControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/order"
	productControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/product"
	"github.com/VersaiAcademy/ShriFurnitureVillage/middleware"
)

// SetupAdminRoutes registers the back-office endpoints. Everything here
// needs an admin token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, products *catalog.Service) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// Catalog management
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))
		admin.POST("/categories", productControllers.CreateCategory(db))
		admin.PUT("/categories/:id", productControllers.UpdateCategory(db))
		admin.DELETE("/categories/:id", productControllers.DeleteCategory(db))

		// Order management
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		admin.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		admin.DELETE("/orders/:orderID", orderControllers.DeleteOrderHandler(db))
	}

	// Live order feed for the admin dashboard. Browsers cannot set an
	// Authorization header on the websocket handshake, so this sits
	// outside the admin group and the handler checks an admin token
	// passed as a query parameter instead.
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
