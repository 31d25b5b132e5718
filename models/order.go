package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Fulfillment statuses, driven by the back office after placement
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusPaid      OrderStatus = "paid"      // payment settled
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusCompleted OrderStatus = "completed" // customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping

	// Payment statuses
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Order struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	OrderRef string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID   string      `gorm:"index;not null" json:"user_id"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	Customer        OrderCustomer `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	ShippingAddress Address       `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`

	Subtotal     int64 `json:"subtotal"`
	Savings      int64 `json:"savings"`
	ShippingCost int64 `json:"shipping_cost"`
	TotalAmount  int64 `json:"total_amount"`

	PaymentMethod string        `json:"payment_method"` // e.g. "card", "upi"
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`

	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Notes     string      `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type OrderItem struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	OrderID       uint   `gorm:"index" json:"order_id"`
	VariantID     string `json:"variant_id"`
	ProductID     string `json:"product_id"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	UnitPrice     int64  `json:"unit_price"`
	OriginalPrice int64  `json:"original_price"`
	Color         string `json:"color"`
	Size          string `json:"size"`
	Quantity      int    `json:"quantity"`
}
