package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaiAcademy/ShriFurnitureVillage/cart"
	"github.com/VersaiAcademy/ShriFurnitureVillage/catalog"
	"github.com/VersaiAcademy/ShriFurnitureVillage/checkout"
	checkoutControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/checkout"
	orderControllers "github.com/VersaiAcademy/ShriFurnitureVillage/controllers/order"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// cart/checkout, order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	carts := cart.NewManager(cart.NewGormRepository(db))
	products := catalog.NewService(db)

	orders := checkout.NewGormOrderRepository(db)
	orders.Placed = orderControllers.BroadcastNewOrder

	// The simulated settlement delay stands in for a gateway round trip.
	payments := &checkout.SimulatedProcessor{Delay: 3 * time.Second}
	flows := checkoutControllers.NewFlows(carts, payments, orders)

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Storefront catalog (public)
	SetupCatalogRoutes(r, products)

	// Session cart + checkout (token-protected; guests included)
	SetupCartRoutes(r, carts, products, flows)

	// Orders (wire contract + admin surface)
	SetupOrderRoutes(r, db)

	// Admin back office (admin token required)
	SetupAdminRoutes(r, db, products)
}
