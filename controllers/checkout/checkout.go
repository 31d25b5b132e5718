package checkoutControllers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/VersaiAcademy/ShriFurnitureVillage/cart"
	"github.com/VersaiAcademy/ShriFurnitureVillage/checkout"
)

type SubmitRequest struct {
	Customer checkout.CustomerDetails `json:"customer"`
	Payment  checkout.PaymentDetails  `json:"payment"`
	Notes    string                   `json:"notes"`
}

// Flows hands out one checkout flow per session, so the in-flight guard
// holds across overlapping HTTP requests from the same session.
type Flows struct {
	carts    *cart.Manager
	payments checkout.PaymentProcessor
	orders   checkout.OrderRepository

	mu    sync.Mutex
	flows map[string]*checkout.Flow
}

func NewFlows(carts *cart.Manager, payments checkout.PaymentProcessor, orders checkout.OrderRepository) *Flows {
	return &Flows{
		carts:    carts,
		payments: payments,
		orders:   orders,
		flows:    make(map[string]*checkout.Flow),
	}
}

func (f *Flows) flowFor(sessionID string, store *cart.Store) *checkout.Flow {
	f.mu.Lock()
	defer f.mu.Unlock()
	if flow, ok := f.flows[sessionID]; ok {
		return flow
	}
	flow := checkout.NewFlow(store, f.payments, f.orders)
	f.flows[sessionID] = flow
	return flow
}

// POST /checkout
func Submit(flows *Flows) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store, err := flows.carts.Store(c.Request.Context(), sessionID.(string))
		if err != nil {
			var perr *cart.PersistenceError
			if !errors.As(err, &perr) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
				return
			}
		}

		flow := flows.flowFor(sessionID.(string), store)
		order, err := flow.Submit(c.Request.Context(), sessionID.(string), req.Customer, req.Payment, req.Notes)
		if err != nil && order == nil {
			respondCheckoutError(c, err)
			return
		}

		resp := gin.H{"order": order}
		if err != nil {
			// Order placed, but the cleared cart slot write failed.
			resp["warning"] = "cart state may not survive a reload"
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func respondCheckoutError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	var serr *checkout.PaymentSettlementError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty", "kind": "empty_cart"})
	case errors.Is(err, checkout.ErrInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress", "kind": "in_progress"})
	case errors.Is(err, checkout.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "kind": "insufficient_stock"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required field",
			"kind":  "validation",
			"field": verr.Field,
		})
	case errors.As(err, &serr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "Payment failed, please try again",
			"kind":      "payment",
			"retryable": true,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Order placement failed"})
	}
}
