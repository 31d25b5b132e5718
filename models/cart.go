package models

import "time"

// CartRecord is the durable slot one session's cart is written to. The
// in-memory cart store is authoritative while the session lives; this row
// only has to survive a reload.
type CartRecord struct {
	ID        uint             `gorm:"primaryKey"`
	SessionID string           `gorm:"uniqueIndex"` // one slot per session
	Items     []CartItemRecord `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItemRecord struct {
	ID            uint   `gorm:"primaryKey"`
	CartID        uint   `gorm:"index"`
	VariantID     string `gorm:"index"`
	ProductID     string
	Title         string
	Image         string
	UnitPrice     int64
	OriginalPrice int64
	Color         string
	Size          string
	Quantity      int
	Position      int // display order within the cart
	AddedAt       time.Time
}
