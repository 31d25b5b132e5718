package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaiAcademy/ShriFurnitureVillage/models"
)

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

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

		product.Title = input.Title
		product.Description = input.Description
		product.Price = input.Price
		product.SalePrice = input.SalePrice
		product.SKU = input.SKU
		product.Stock = input.Stock
		product.Material = input.Material
		product.Seater = input.Seater
		product.DimensionsInch = input.DimensionsInch
		product.DimensionsCm = input.DimensionsCm
		product.Warranty = input.Warranty
		product.DeliveryTime = input.DeliveryTime
		product.DeliveryCondition = input.DeliveryCondition
		product.Brand = input.Brand
		product.Care = input.Care
		product.Colors = input.Colors
		product.Sizes = input.Sizes
		product.ImageURL = input.ImageURL
		product.Images = input.Images
		product.CategoryID = category.ID

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
