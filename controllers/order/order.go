package orderControllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VersaiAcademy/ShriFurnitureVillage/models"
)

// -------- Request Structs --------

// CreateOrderRequest is the wire contract for direct order creation. The
// server recomputes the total from the submitted line prices; the stored
// total is always the server's number.
type CreateOrderRequest struct {
	UserID          string                   `json:"userId" binding:"required"`
	Items           []CreateOrderItemRequest `json:"items" binding:"required"`
	ShippingAddress models.Address           `json:"shippingAddress"`
	Notes           string                   `json:"notes"`
}

type CreateOrderItemRequest struct {
	Product         string `json:"product" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	PriceAtPurchase int64  `json:"priceAtPurchase" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func parseOrderStatus(status string) (models.OrderStatus, bool) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, true
	case string(models.OrderStatusPaid):
		return models.OrderStatusPaid, true
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, true
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, true
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, true
	default:
		return "", false
	}
}

// canTransition encodes the fulfillment lifecycle: forward through
// pending → paid → shipped → completed, cancellable until shipped.
func canTransition(from, to models.OrderStatus) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusPaid || to == models.OrderStatusCancelled
	case models.OrderStatusPaid:
		return to == models.OrderStatusShipped || to == models.OrderStatusCancelled
	case models.OrderStatusShipped:
		return to == models.OrderStatusCompleted
	default:
		return false
	}
}

// requesterMayAccess allows admins everywhere and every other token
// only its own orders. ValidateToken puts the subject and role on the
// context.
func requesterMayAccess(c *gin.Context, ownerID string) bool {
	if role, _ := c.Get("role"); role == "admin" {
		return true
	}
	requester, _ := c.Get("user_id")
	return requester == ownerID
}

// -------- Handlers --------

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}

		var total int64
		items := make([]models.OrderItem, len(req.Items))
		for i, item := range req.Items {
			total += item.PriceAtPurchase * int64(item.Quantity)
			items[i] = models.OrderItem{
				ProductID: item.Product,
				UnitPrice: item.PriceAtPurchase,
				Quantity:  item.Quantity,
			}
		}

		order := models.Order{
			OrderRef:        "SFV-" + time.Now().Format("20060102150405") + "-" + uuid.NewString(),
			UserID:          req.UserID,
			Items:           items,
			ShippingAddress: req.ShippingAddress,
			Subtotal:        total,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			Notes:           req.Notes,
			CreatedAt:       time.Now(),
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/user/:userID
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		if !requesterMayAccess(c, userID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID: accepts a numeric id or an order ref.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		query := db.Preload("Items")
		var order models.Order
		var err error
		if numericID, convErr := strconv.Atoi(id); convErr == nil {
			err = query.First(&order, numericID).Error
		} else {
			err = query.Where("order_ref = ?", id).First(&order).Error
		}
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !requesterMayAccess(c, order.UserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, ok := parseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if !canTransition(order.Status, newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "cannot move order from " + string(order.Status) + " to " + string(newStatus),
			})
			return
		}

		order.Status = newStatus
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:orderID (admin)
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Order{}, c.Param("orderID"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
