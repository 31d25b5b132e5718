package cart

import (
	"fmt"
	"time"
)

// LineItem is one row in the cart: a product variant, its quantity, and
// the prices snapshotted when it was first added.
type LineItem struct {
	VariantID     string    `json:"variant_id"`
	ProductID     string    `json:"product_id"`
	Title         string    `json:"title"`
	Image         string    `json:"image"`
	UnitPrice     int64     `json:"unit_price"`
	OriginalPrice int64     `json:"original_price"` // 0 when never discounted
	Color         string    `json:"color"`
	Size          string    `json:"size"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

// NewItem is an add-to-cart request. Quantity of 0 defaults to 1.
type NewItem struct {
	ProductID     string
	Title         string
	Image         string
	UnitPrice     int64
	OriginalPrice int64
	Color         string
	Size          string
	Quantity      int
}

func (n NewItem) validate() error {
	if n.ProductID == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidLineItem)
	}
	if n.UnitPrice <= 0 {
		return fmt.Errorf("%w: unit price must be positive", ErrInvalidLineItem)
	}
	if n.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidLineItem)
	}
	return nil
}
