package checkoutControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaiAcademy/ShriFurnitureVillage/cart"
	"github.com/VersaiAcademy/ShriFurnitureVillage/checkout"
)

type memCartRepo struct {
	m     sync.Mutex
	saved map[string][]cart.LineItem
}

func (m *memCartRepo) SaveCart(_ context.Context, sessionID string, items []cart.LineItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.saved[sessionID] = items
	return nil
}

func (m *memCartRepo) LoadCart(_ context.Context, sessionID string) ([]cart.LineItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.saved[sessionID], nil
}

func (m *memCartRepo) DeleteCart(_ context.Context, sessionID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.saved, sessionID)
	return nil
}

type memOrderRepo struct {
	m        sync.Mutex
	orders   []*checkout.Order
	stockErr error
}

func (m *memOrderRepo) CheckStock(_ context.Context, _ []cart.LineItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	return m.stockErr
}

func (m *memOrderRepo) SaveOrder(_ context.Context, order *checkout.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.orders = append(m.orders, order)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *cart.Manager, *memOrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := cart.NewManager(&memCartRepo{saved: make(map[string][]cart.LineItem)})
	orders := &memOrderRepo{}
	flows := NewFlows(carts, &checkout.SimulatedProcessor{Delay: time.Millisecond}, orders)

	r := gin.New()
	r.POST("/checkout", func(c *gin.Context) {
		c.Set("user_id", "guest_test")
		c.Next()
	}, Submit(flows))
	return r, carts, orders
}

func submitBody(email string) []byte {
	body := SubmitRequest{
		Customer: checkout.CustomerDetails{
			FirstName: "Asha",
			LastName:  "Nair",
			Email:     email,
			Phone:     "9876543210",
			Address:   "12 MG Road",
			City:      "Kochi",
			State:     "Kerala",
			Pincode:   "682001",
		},
		Payment: checkout.PaymentDetails{
			Method:     checkout.PaymentMethodCard,
			CardNumber: "4111111111111111",
			ExpiryDate: "12/27",
			CVV:        "123",
			CardName:   "Asha Nair",
		},
	}
	data, _ := json.Marshal(body)
	return data
}

func fillCart(t *testing.T, carts *cart.Manager) {
	t.Helper()
	store, err := carts.Store(context.Background(), "guest_test")
	require.NoError(t, err)
	_, err = store.AddItem(context.Background(), cart.NewItem{
		ProductID: "1", Title: "Teak Sofa", UnitPrice: 6000, Quantity: 1,
	})
	require.NoError(t, err)
}

func TestSubmitHandlerPlacesOrder(t *testing.T) {
	r, carts, orders := newTestRouter(t)
	fillCart(t, carts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(submitBody("asha@example.com")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, orders.orders, 1)
}

func TestSubmitHandlerEmptyCart(t *testing.T) {
	r, _, orders := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(submitBody("asha@example.com")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty_cart")
	assert.Empty(t, orders.orders)
}

func TestSubmitHandlerInsufficientStock(t *testing.T) {
	r, carts, orders := newTestRouter(t)
	fillCart(t, carts)
	orders.stockErr = checkout.ErrInsufficientStock

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(submitBody("asha@example.com")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_stock")
	assert.Empty(t, orders.orders)
}

func TestSubmitHandlerMissingEmail(t *testing.T) {
	r, carts, orders := newTestRouter(t)
	fillCart(t, carts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(submitBody("")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation", resp["kind"])
	assert.Equal(t, "email", resp["field"])
	assert.Empty(t, orders.orders)

	// The cart is untouched by a rejected submission.
	store, err := carts.Store(context.Background(), "guest_test")
	require.NoError(t, err)
	assert.Equal(t, 1, store.ItemCount())
}
