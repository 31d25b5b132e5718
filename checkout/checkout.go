// Package checkout turns a finalized cart into an immutable order. A
// submission walks a fixed lifecycle:
//
//	Draft → Validating → Processing → Placed
//	Draft → Validating → Rejected          (missing fields, resubmit)
//	Processing → Failed                    (settlement or persistence)
//
// Only a Placed transition clears the cart; every failure path leaves it
// intact so the customer can retry.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VersaiAcademy/ShriFurnitureVillage/cart"
	"github.com/VersaiAcademy/ShriFurnitureVillage/pricing"
)

type State string

const (
	StateDraft      State = "draft"
	StateValidating State = "validating"
	StateProcessing State = "processing"
	StatePlaced     State = "placed"
	StateRejected   State = "rejected"
	StateFailed     State = "failed"
)

// CustomerDetails is the contact and shipping form. Every field is
// required.
type CustomerDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

// Totals is recomputed from the item snapshot at order-creation time,
// never copied from a possibly-stale earlier computation.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Savings  int64 `json:"savings"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

type PaymentRecord struct {
	Method PaymentMethod `json:"method"`
	Amount int64         `json:"amount"`
	Status string        `json:"status"` // pending | completed | failed
}

// Order is the immutable record of a completed checkout. Items are a
// snapshot copy; later cart mutations cannot reach them.
type Order struct {
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	Items     []cart.LineItem `json:"items"`
	Customer  CustomerDetails `json:"customer"`
	Payment   PaymentRecord   `json:"payment"`
	Totals    Totals          `json:"totals"`
	Notes     string          `json:"notes"`
	OrderDate time.Time       `json:"order_date"`
}

// OrderRepository persists placed orders. CheckStock runs before the
// payment settles so a customer is never charged for stock that is
// already gone; it reports ErrInsufficientStock when a line cannot be
// covered. SaveOrder receives a fully constructed order; implementations
// must write it atomically and re-check stock under whatever locking
// they need.
type OrderRepository interface {
	CheckStock(ctx context.Context, items []cart.LineItem) error
	SaveOrder(ctx context.Context, order *Order) error
}

// Flow drives one session's checkout. A Flow is reused across attempts:
// a Rejected or Failed attempt leaves it ready for resubmission. A
// submission arriving while another is in flight is refused outright,
// which keeps a double-click from creating two orders.
type Flow struct {
	cart     *cart.Store
	payments PaymentProcessor
	orders   OrderRepository

	mu       sync.Mutex
	state    State
	inFlight bool
	now      func() time.Time
}

func NewFlow(c *cart.Store, payments PaymentProcessor, orders OrderRepository) *Flow {
	return &Flow{
		cart:     c,
		payments: payments,
		orders:   orders,
		state:    StateDraft,
		now:      time.Now,
	}
}

// State reports the lifecycle state of the most recent attempt.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit runs a checkout attempt end to end. On success the returned
// order is placed and the cart has been cleared; if clearing the durable
// cart slot fails the order is still returned together with the
// *cart.PersistenceError so the caller can warn.
func (f *Flow) Submit(ctx context.Context, userID string, customer CustomerDetails, payment PaymentDetails, notes string) (*Order, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrInProgress
	}
	f.inFlight = true
	f.state = StateDraft
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	// Fail fast before validation on an empty cart.
	items := f.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	f.setState(StateValidating)
	if err := validate(customer, payment); err != nil {
		f.setState(StateRejected)
		return nil, err
	}

	// Stock is checked before settlement engages. A shortfall is a
	// rejection like any other validation failure; the customer has not
	// been charged and can retry with an adjusted cart.
	if err := f.orders.CheckStock(ctx, items); err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			f.setState(StateRejected)
			return nil, err
		}
		f.setState(StateFailed)
		return nil, fmt.Errorf("checkout: stock check: %w", err)
	}

	f.setState(StateProcessing)

	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{
			UnitPrice:     item.UnitPrice,
			OriginalPrice: item.OriginalPrice,
			Quantity:      item.Quantity,
		}
	}
	subtotal := pricing.Subtotal(lines)
	totals := Totals{
		Subtotal: subtotal,
		Savings:  pricing.Savings(lines),
		Shipping: pricing.ShippingCost(subtotal),
		Total:    pricing.Total(lines),
	}

	if _, err := f.payments.Settle(ctx, totals.Total, payment); err != nil {
		f.setState(StateFailed)
		return nil, &PaymentSettlementError{Err: err}
	}

	// Construct the full order before any persistence call so a partial
	// failure can never leave a half-written record.
	order := &Order{
		OrderID:  newOrderID(),
		UserID:   userID,
		Items:    items,
		Customer: customer,
		Payment: PaymentRecord{
			Method: payment.Method,
			Amount: totals.Total,
			Status: "completed",
		},
		Totals:    totals,
		Notes:     notes,
		OrderDate: f.now(),
	}

	if err := f.orders.SaveOrder(ctx, order); err != nil {
		f.setState(StateFailed)
		return nil, fmt.Errorf("checkout: save order: %w", err)
	}

	clearErr := f.cart.Clear(ctx)
	f.setState(StatePlaced)
	return order, clearErr
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// validate checks the shared contact fields first, then the fields the
// chosen payment method requires. The first missing field is reported.
func validate(customer CustomerDetails, payment PaymentDetails) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", customer.FirstName},
		{"lastName", customer.LastName},
		{"email", customer.Email},
		{"phone", customer.Phone},
		{"address", customer.Address},
		{"city", customer.City},
		{"state", customer.State},
		{"pincode", customer.Pincode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field}
		}
	}

	switch payment.Method {
	case PaymentMethodRazorpay:
		// The hosted Razorpay flow collects payment details itself;
		// nothing method-specific to require here.
	case PaymentMethodUPI:
		if strings.TrimSpace(payment.UPIID) == "" {
			return &ValidationError{Field: "upiId"}
		}
	case PaymentMethodCard:
		cardRequired := []struct {
			field string
			value string
		}{
			{"cardNumber", payment.CardNumber},
			{"expiryDate", payment.ExpiryDate},
			{"cvv", payment.CVV},
			{"cardName", payment.CardName},
		}
		for _, r := range cardRequired {
			if strings.TrimSpace(r.value) == "" {
				return &ValidationError{Field: r.field}
			}
		}
	default:
		return &ValidationError{Field: "paymentMethod"}
	}
	return nil
}

// newOrderID builds a collision-resistant order reference, e.g.
// SFV-20250901154210-1b9f…
func newOrderID() string {
	return "SFV-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
