// Package pricing derives monetary totals from a collection of cart lines.
// It holds no state: every query is recomputed from the lines it is given.
// Amounts are whole rupees on int64 so long carts cannot accumulate
// floating-point error.
package pricing

const (
	// FreeShippingThreshold is the pre-savings subtotal at or above which
	// shipping is free.
	FreeShippingThreshold int64 = 5000

	// StandardShippingFee applies below the threshold.
	StandardShippingFee int64 = 200
)

// Line is the slice of a cart line item pricing needs. OriginalPrice of 0
// means the item was never discounted.
type Line struct {
	UnitPrice     int64
	OriginalPrice int64
	Quantity      int
}

// Subtotal is the sum of unit price times quantity across all lines,
// before savings and shipping.
func Subtotal(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.UnitPrice * int64(l.Quantity)
	}
	return total
}

// Savings is the aggregate discount from list price to effective price.
// Lines without a list price, or whose list price does not exceed the
// unit price, contribute nothing.
func Savings(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		if l.OriginalPrice > l.UnitPrice {
			total += (l.OriginalPrice - l.UnitPrice) * int64(l.Quantity)
		}
	}
	return total
}

// ShippingCost is threshold-based: free at or above FreeShippingThreshold,
// a flat StandardShippingFee below it. The comparison is against the
// pre-savings subtotal.
func ShippingCost(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}

// Total is subtotal minus savings plus shipping, with shipping computed on
// the pre-savings subtotal.
func Total(lines []Line) int64 {
	subtotal := Subtotal(lines)
	return subtotal - Savings(lines) + ShippingCost(subtotal)
}
