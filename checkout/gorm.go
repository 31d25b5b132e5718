package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VersaiAcademy/ShriFurnitureVillage/cart"
	"github.com/VersaiAcademy/ShriFurnitureVillage/models"
)

// GormOrderRepository writes placed orders and decrements catalog stock
// in one transaction. Product rows are locked while stock is checked so
// two concurrent placements cannot both take the last unit.
type GormOrderRepository struct {
	db *gorm.DB

	// Placed is invoked after a successful commit, e.g. to broadcast the
	// order to the admin dashboard feed. Optional.
	Placed func(models.Order)
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CheckStock verifies every catalog-backed line can still be covered.
// It runs before the customer is charged; the authoritative re-check
// happens under row locks inside SaveOrder. Lines whose product id is
// not numeric never came from this catalog and are skipped.
func (r *GormOrderRepository) CheckStock(ctx context.Context, items []cart.LineItem) error {
	for _, item := range items {
		productID, err := strconv.Atoi(item.ProductID)
		if err != nil {
			continue
		}
		var product models.Product
		if err := r.db.WithContext(ctx).First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s is no longer available", ErrInsufficientStock, item.Title)
			}
			return fmt.Errorf("load product %s: %w", item.ProductID, err)
		}
		if product.Stock < item.Quantity {
			return fmt.Errorf("%w: %s", ErrInsufficientStock, item.Title)
		}
	}
	return nil
}

func (r *GormOrderRepository) SaveOrder(ctx context.Context, order *Order) error {
	record := toModel(order)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			productID, err := strconv.Atoi(item.ProductID)
			if err != nil {
				// Variant of a product that never came from this catalog;
				// nothing to decrement.
				continue
			}

			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, productID).Error; err != nil {
				return fmt.Errorf("lock product %s: %w", item.ProductID, err)
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, item.Title)
			}
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return fmt.Errorf("update stock for %s: %w", item.ProductID, err)
			}
		}

		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if r.Placed != nil {
		r.Placed(record)
	}
	return nil
}

func toModel(order *Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.OrderItem{
			VariantID:     item.VariantID,
			ProductID:     item.ProductID,
			Title:         item.Title,
			Image:         item.Image,
			UnitPrice:     item.UnitPrice,
			OriginalPrice: item.OriginalPrice,
			Color:         item.Color,
			Size:          item.Size,
			Quantity:      item.Quantity,
		}
	}
	return models.Order{
		OrderRef: order.OrderID,
		UserID:   order.UserID,
		Items:    items,
		Customer: models.OrderCustomer{
			FirstName: order.Customer.FirstName,
			LastName:  order.Customer.LastName,
			Email:     order.Customer.Email,
			Phone:     order.Customer.Phone,
		},
		ShippingAddress: models.Address{
			Street:     order.Customer.Address,
			City:       order.Customer.City,
			State:      order.Customer.State,
			PostalCode: order.Customer.Pincode,
			Country:    "India",
		},
		Subtotal:      order.Totals.Subtotal,
		Savings:       order.Totals.Savings,
		ShippingCost:  order.Totals.Shipping,
		TotalAmount:   order.Totals.Total,
		PaymentMethod: string(order.Payment.Method),
		PaymentStatus: models.PaymentStatusCompleted,
		Status:        models.OrderStatusPending,
		Notes:         order.Notes,
		CreatedAt:     order.OrderDate,
	}
}
