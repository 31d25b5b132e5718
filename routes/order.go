package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/order"
	"github.com/VersaiAcademy/ShriFurnitureVillage/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Direct order creation (wire contract; totals recomputed server-side)
		orders.POST("/", orderControllers.CreateOrderHandler(db))

		// Order lookups for a signed-in session
		orders.Use(middleware.ValidateToken)
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
