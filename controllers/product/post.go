package productControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaiAcademy/ShriFurnitureVillage/models"
)

type ProductInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=1"`
	SalePrice   int64  `json:"sale_price"`
	SKU         string `json:"sku"`
	Stock       int    `json:"stock"`
	Category    string `json:"category" binding:"required"` // slug, name, or id

	Material          string `json:"material"`
	Seater            string `json:"seater"`
	DimensionsInch    string `json:"dimensions_inch"`
	DimensionsCm      string `json:"dimensions_cm"`
	Warranty          string `json:"warranty"`
	DeliveryTime      string `json:"delivery_time"`
	DeliveryCondition string `json:"delivery_condition"`
	Brand             string `json:"brand"`
	Care              string `json:"care"`

	Colors []string `json:"colors"`
	Sizes  []string `json:"sizes"`

	ImageURL string   `json:"image_url" binding:"required"`
	Images   []string `json:"images"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + err.Error()})
			return
		}
		if input.SalePrice < 0 || input.SalePrice > input.Price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sale_price must not exceed price"})
			return
		}

		var category models.Category
		if err := db.Where("slug = ? OR name = ?", input.Category, input.Category).
			First(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		product := models.Product{
			Title:             input.Title,
			Description:       input.Description,
			Price:             input.Price,
			SalePrice:         input.SalePrice,
			SKU:               input.SKU,
			Stock:             input.Stock,
			IsActive:          true,
			Material:          input.Material,
			Seater:            input.Seater,
			DimensionsInch:    input.DimensionsInch,
			DimensionsCm:      input.DimensionsCm,
			Warranty:          input.Warranty,
			DeliveryTime:      input.DeliveryTime,
			DeliveryCondition: input.DeliveryCondition,
			Brand:             input.Brand,
			Care:              input.Care,
			Colors:            input.Colors,
			Sizes:             input.Sizes,
			ImageURL:          input.ImageURL,
			Images:            input.Images,
			CategoryID:        category.ID,
			CreatedAt:         time.Now(),
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
