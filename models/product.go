package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`      // whole rupees
	SalePrice   int64  `json:"sale_price"`                 // 0 means no discount
	SKU         string `json:"sku"`
	Stock       int    `json:"stock"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	// Product details shown on the product page
	Material          string `json:"material"`
	Seater            string `json:"seater"` // e.g. "3-Seater", "L-Shaped"
	DimensionsInch    string `json:"dimensions_inch"`
	DimensionsCm      string `json:"dimensions_cm"`
	Warranty          string `json:"warranty"`
	DeliveryTime      string `json:"delivery_time"`
	DeliveryCondition string `json:"delivery_condition"`
	Brand             string `json:"brand"`
	Care              string `json:"care"`

	// Variant options the customer can pick from
	Colors []string `gorm:"serializer:json" json:"colors"`
	Sizes  []string `gorm:"serializer:json" json:"sizes"`

	ImageURL string   `gorm:"not null" json:"image_url"`
	Images   []string `gorm:"serializer:json" json:"images"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `json:"category"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EffectivePrice is the price a unit actually sells for: the sale price
// when one is set, otherwise the list price.
func (p Product) EffectivePrice() int64 {
	if p.SalePrice > 0 && p.SalePrice < p.Price {
		return p.SalePrice
	}
	return p.Price
}
