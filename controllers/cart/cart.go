package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VersaiAcademy/ShriFurnitureVillage/cart"
	"github.com/VersaiAcademy/ShriFurnitureVillage/catalog"
	"github.com/VersaiAcademy/ShriFurnitureVillage/money"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// cartView is the cart plus its derived totals, formatted at the
// boundary. The totals are recomputed on every request, never cached.
type cartView struct {
	Items             []cart.LineItem `json:"items"`
	ItemCount         int             `json:"item_count"`
	Subtotal          int64           `json:"subtotal"`
	Savings           int64           `json:"savings"`
	ShippingCost      int64           `json:"shipping_cost"`
	Total             int64           `json:"total"`
	SubtotalDisplay   string          `json:"subtotal_display"`
	SavingsDisplay    string          `json:"savings_display"`
	ShippingDisplay   string          `json:"shipping_display"`
	TotalDisplay      string          `json:"total_display"`
	PersistenceFailed bool            `json:"persistence_failed,omitempty"`
}

func viewOf(store *cart.Store, persistenceFailed bool) cartView {
	return cartView{
		Items:             store.Items(),
		ItemCount:         store.ItemCount(),
		Subtotal:          store.Subtotal(),
		Savings:           store.Savings(),
		ShippingCost:      store.ShippingCost(),
		Total:             store.Total(),
		SubtotalDisplay:   money.Format(store.Subtotal()),
		SavingsDisplay:    money.Format(store.Savings()),
		ShippingDisplay:   money.Format(store.ShippingCost()),
		TotalDisplay:      money.Format(store.Total()),
		PersistenceFailed: persistenceFailed,
	}
}

func sessionStore(c *gin.Context, carts *cart.Manager) (*cart.Store, bool) {
	sessionID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	store, err := carts.Store(c.Request.Context(), sessionID.(string))
	if err != nil {
		// The slot could not be read; the session continues on an empty
		// in-memory cart.
		var perr *cart.PersistenceError
		if !errors.As(err, &perr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return nil, false
		}
	}
	return store, true
}

// GET /cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, viewOf(store, false))
	}
}

// POST /cart
//
// Adds a product variant. The effective price and list price are
// snapshotted from the catalog now; later catalog price changes do not
// reach items already in the cart.
func AddCartItem(carts *cart.Manager, products *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.Product(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		item := cart.NewItem{
			ProductID: strconv.Itoa(int(product.ID)),
			Title:     product.Title,
			Image:     product.ImageURL,
			UnitPrice: product.EffectivePrice(),
			Color:     input.Color,
			Size:      input.Size,
			Quantity:  input.Quantity,
		}
		if product.SalePrice > 0 && product.SalePrice < product.Price {
			item.OriginalPrice = product.Price
		}

		if _, err := store.AddItem(c.Request.Context(), item); err != nil {
			var perr *cart.PersistenceError
			if errors.As(err, &perr) {
				c.JSON(http.StatusOK, viewOf(store, true))
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, viewOf(store, false))
	}
}

// PUT /cart/:variant_id
func UpdateCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := store.UpdateQuantity(c.Request.Context(), c.Param("variant_id"), input.Quantity)
		respondAfterMutation(c, store, err)
	}
}

// DELETE /cart/:variant_id
func DeleteCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}
		err := store.RemoveItem(c.Request.Context(), c.Param("variant_id"))
		respondAfterMutation(c, store, err)
	}
}

// DELETE /cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := sessionStore(c, carts)
		if !ok {
			return
		}
		err := store.Clear(c.Request.Context())
		respondAfterMutation(c, store, err)
	}
}

func respondAfterMutation(c *gin.Context, store *cart.Store, err error) {
	if err != nil {
		var perr *cart.PersistenceError
		if errors.As(err, &perr) {
			// In-memory mutation stood; tell the client the slot write
			// failed so it can warn about reload durability.
			c.JSON(http.StatusOK, viewOf(store, true))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(store, false))
}
