package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtotalEmpty(t *testing.T) {
	assert.Zero(t, Subtotal(nil))
	assert.Zero(t, Savings(nil))
	assert.Zero(t, Total(nil))
}

func TestSubtotal(t *testing.T) {
	lines := []Line{
		{UnitPrice: 1000, Quantity: 2},
		{UnitPrice: 1000, Quantity: 3},
	}
	assert.Equal(t, int64(5000), Subtotal(lines))
}

func TestSavings(t *testing.T) {
	lines := []Line{
		{UnitPrice: 800, OriginalPrice: 1000, Quantity: 2}, // 400 off
		{UnitPrice: 500, Quantity: 1},                      // no list price
		{UnitPrice: 700, OriginalPrice: 700, Quantity: 4},  // no discount
	}
	assert.Equal(t, int64(400), Savings(lines))
}

func TestShippingCostBoundary(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"zero", 0, StandardShippingFee},
		{"just below threshold", FreeShippingThreshold - 1, StandardShippingFee},
		{"at threshold", FreeShippingThreshold, 0},
		{"above threshold", FreeShippingThreshold + 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShippingCost(tt.subtotal))
		})
	}
}

// Two variants of the same product at the free-shipping threshold.
func TestTotalAtThreshold(t *testing.T) {
	lines := []Line{
		{UnitPrice: 1000, Quantity: 2},
		{UnitPrice: 1000, Quantity: 3},
	}
	assert.Equal(t, int64(5000), Subtotal(lines))
	assert.Equal(t, int64(0), ShippingCost(Subtotal(lines)))
	assert.Equal(t, int64(5000), Total(lines))
}

func TestTotalBelowThreshold(t *testing.T) {
	lines := []Line{{UnitPrice: 1500, Quantity: 2}}
	assert.Equal(t, int64(3000), Subtotal(lines))
	assert.Equal(t, int64(3200), Total(lines))
}

func TestTotalIdentity(t *testing.T) {
	carts := [][]Line{
		nil,
		{{UnitPrice: 1, Quantity: 1}},
		{{UnitPrice: 2500, OriginalPrice: 3000, Quantity: 2}},
		{
			{UnitPrice: 999, OriginalPrice: 1299, Quantity: 3},
			{UnitPrice: 450, Quantity: 7},
			{UnitPrice: 12000, OriginalPrice: 15000, Quantity: 1},
		},
	}
	for _, lines := range carts {
		want := Subtotal(lines) - Savings(lines) + ShippingCost(Subtotal(lines))
		assert.Equal(t, want, Total(lines))
	}
}
