// Package catalog is the read-only product/category lookup the storefront
// and the cart handlers consume. The cart never dereferences a product
// after add-to-cart; prices are snapshotted when the item enters the cart.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/VersaiAcademy/ShriFurnitureVillage/models"
)

// ErrNotFound reports a catalog miss; handlers map it to a 404.
var ErrNotFound = errors.New("catalog: not found")

// Filter narrows a product listing. Zero values mean no filtering.
type Filter struct {
	Category string // category slug or name
	Query    string // case-insensitive title substring
}

// Service answers catalog lookups. Concurrent lookups of the same product
// collapse into one query, which matters when a product page goes viral.
type Service struct {
	db  *gorm.DB
	sfg singleflight.Group
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Product fetches one active product by id.
func (s *Service) Product(ctx context.Context, id string) (*models.Product, error) {
	v, err, _ := s.sfg.Do("product:"+id, func() (interface{}, error) {
		numericID, convErr := strconv.Atoi(id)
		if convErr != nil {
			return nil, ErrNotFound
		}
		var product models.Product
		err := s.db.WithContext(ctx).
			Preload("Category").
			Where("is_active = ?", true).
			First(&product, numericID).Error
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("fetch product %s: %w", id, err)
		}
		return &product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Product), nil
}

// Products lists active products matching the filter, newest first.
func (s *Service) Products(ctx context.Context, filter Filter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Preload("Category").
		Where("is_active = ?", true)

	if filter.Category != "" {
		var category models.Category
		err := s.db.WithContext(ctx).
			Where("slug = ? OR name = ?", filter.Category, filter.Category).
			First(&category).Error
		if err == gorm.ErrRecordNotFound {
			return []models.Product{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fetch category %q: %w", filter.Category, err)
		}
		query = query.Where("category_id = ?", category.ID)
	}
	if filter.Query != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Query+"%")
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// CategoryBySlug fetches one category by slug or name.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		Where("slug = ? OR name = ?", slug, slug).
		First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch category %q: %w", slug, err)
	}
	return &category, nil
}

// Categories lists every category.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
