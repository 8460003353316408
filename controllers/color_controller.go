package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
)

// ColorInput is one color variant in an add-colors request
type ColorInput struct {
	Name     string          `json:"Name" binding:"required,max=50"`
	Quantity decimal.Decimal `json:"Quantity" binding:"required"`
}

// AddColorsRequest is the request body for adding color variants in bulk
type AddColorsRequest struct {
	Colors []ColorInput `json:"colors" binding:"required,min=1,dive"`
}

// ColorAdjustment increments a color's stocked quantity by id
type ColorAdjustment struct {
	ID       uint            `json:"Id" binding:"required"`
	Quantity decimal.Decimal `json:"Quantity" binding:"required"`
}

// UpdateColorsRequest is the request body for bulk quantity adjustments
type UpdateColorsRequest struct {
	Data []ColorAdjustment `json:"data" binding:"required,min=1,dive"`
}

// AddColors handles POST /api/catalogs/:catalogId/colors
func AddColors(c *gin.Context) {
	catalogID, ok := pathID(c, "catalogId")
	if !ok {
		return
	}

	db := config.GetDB()

	var catalog models.Catalog
	if err := db.First(&catalog, "id = ?", catalogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Catalog not found"})
			return
		}
		databaseError(c)
		return
	}

	var req AddColorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}
	for _, input := range req.Colors {
		if input.Quantity.IsNegative() {
			validationFailed(c, fieldErrors{"Quantity": {"must not be negative"}})
			return
		}
	}

	colors := make([]models.Color, 0, len(req.Colors))
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, input := range req.Colors {
			color := models.Color{
				CatalogID: catalog.ID,
				Name:      input.Name,
				Quantity:  input.Quantity,
			}
			if err := tx.Create(&color).Error; err != nil {
				return err
			}
			colors = append(colors, color)
		}
		return nil
	})
	if err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Colors added successfully",
		"data":    colors,
	})
}

// GetColors handles GET /api/catalogs/:catalogId/colors
func GetColors(c *gin.Context) {
	catalogID, ok := pathID(c, "catalogId")
	if !ok {
		return
	}

	db := config.GetDB()

	var colors []models.Color
	if err := db.Where("catalog_id = ?", catalogID).Find(&colors).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": colors})
}

// UpdateColors handles POST /api/catalogs/:catalogId/colors/update and
// increments stocked quantities by color id
func UpdateColors(c *gin.Context) {
	catalogID, ok := pathID(c, "catalogId")
	if !ok {
		return
	}

	db := config.GetDB()

	var catalog models.Catalog
	if err := db.First(&catalog, "id = ?", catalogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Catalog not found"})
			return
		}
		databaseError(c)
		return
	}

	var req UpdateColorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, adjustment := range req.Data {
			var color models.Color
			if err := tx.Where("id = ? AND catalog_id = ?", adjustment.ID, catalog.ID).
				First(&color).Error; err != nil {
				return err
			}
			color.Quantity = color.Quantity.Add(adjustment.Quantity)
			if err := tx.Save(&color).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Color not found"})
			return
		}
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Colors updated successfully"})
}
