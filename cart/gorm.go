package cart

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/VersaiAcademy/ShriFurnitureVillage/models"
)

// GormRepository stores cart slots in the carts/cart_item_records tables,
// one row per session.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// SaveCart replaces the session's slot with the given items. The replace
// runs in one transaction so a crash cannot leave a half-written slot.
func (r *GormRepository) SaveCart(ctx context.Context, sessionID string, items []LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.CartRecord
		err := tx.Where("session_id = ?", sessionID).First(&record).Error
		if err == gorm.ErrRecordNotFound {
			record = models.CartRecord{SessionID: sessionID}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("create cart slot: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("fetch cart slot: %w", err)
		}

		if err := tx.Where("cart_id = ?", record.ID).Delete(&models.CartItemRecord{}).Error; err != nil {
			return fmt.Errorf("clear cart slot: %w", err)
		}
		if len(items) == 0 {
			return nil
		}

		rows := make([]models.CartItemRecord, len(items))
		for i, item := range items {
			rows[i] = models.CartItemRecord{
				CartID:        record.ID,
				VariantID:     item.VariantID,
				ProductID:     item.ProductID,
				Title:         item.Title,
				Image:         item.Image,
				UnitPrice:     item.UnitPrice,
				OriginalPrice: item.OriginalPrice,
				Color:         item.Color,
				Size:          item.Size,
				Quantity:      item.Quantity,
				Position:      i,
				AddedAt:       item.AddedAt,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("write cart items: %w", err)
		}
		return nil
	})
}

func (r *GormRepository) LoadCart(ctx context.Context, sessionID string) ([]LineItem, error) {
	var record models.CartRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("session_id = ?", sessionID).
		First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch cart slot: %w", err)
	}

	items := make([]LineItem, len(record.Items))
	for i, row := range record.Items {
		items[i] = LineItem{
			VariantID:     row.VariantID,
			ProductID:     row.ProductID,
			Title:         row.Title,
			Image:         row.Image,
			UnitPrice:     row.UnitPrice,
			OriginalPrice: row.OriginalPrice,
			Color:         row.Color,
			Size:          row.Size,
			Quantity:      row.Quantity,
			AddedAt:       row.AddedAt,
		}
	}
	return items, nil
}

func (r *GormRepository) DeleteCart(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.CartRecord
		err := tx.Where("session_id = ?", sessionID).First(&record).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return fmt.Errorf("fetch cart slot: %w", err)
		}
		if err := tx.Where("cart_id = ?", record.ID).Delete(&models.CartItemRecord{}).Error; err != nil {
			return fmt.Errorf("clear cart slot: %w", err)
		}
		return nil
	})
}
