package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
	"github.com/ali694519/order/services"
	"github.com/ali694519/order/utils"
)

// CreateCatalogRequest is the request body for creating a catalog
type CreateCatalogRequest struct {
	Name  string          `json:"Name" binding:"required,max=255"`
	Price decimal.Decimal `json:"Price" binding:"required"`
}

// UpdateCatalogRequest carries partial catalog fields
type UpdateCatalogRequest struct {
	Name  *string          `json:"Name" binding:"omitempty,max=255"`
	Price *decimal.Decimal `json:"Price"`
}

// catalogSummary is the listing shape: id, name, price plus the summed
// meters in stock across the catalog's colors
func catalogSummary(catalog models.Catalog) gin.H {
	totalMeters := decimal.Zero
	for _, color := range catalog.Colors {
		totalMeters = totalMeters.Add(color.Quantity)
	}
	return gin.H{
		"Id":           catalog.ID,
		"Name":         catalog.Name,
		"Price":        catalog.Price,
		"total_meters": totalMeters,
	}
}

// GetCatalogs handles GET /api/catalogs (paginated)
func GetCatalogs(c *gin.Context) {
	db := config.GetDB()
	perPage, page := utils.PageParams(c)

	var total int64
	if err := db.Model(&models.Catalog{}).Count(&total).Error; err != nil {
		databaseError(c)
		return
	}

	var catalogs []models.Catalog
	if err := db.Preload("Colors").
		Offset(utils.Offset(perPage, page)).Limit(perPage).
		Find(&catalogs).Error; err != nil {
		databaseError(c)
		return
	}

	summaries := make([]gin.H, 0, len(catalogs))
	for _, catalog := range catalogs {
		summaries = append(summaries, catalogSummary(catalog))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": utils.NewPage(summaries, total, perPage, page),
	})
}

// CreateCatalog handles POST /api/catalogs
func CreateCatalog(c *gin.Context) {
	var req CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}
	if req.Price.IsNegative() {
		validationFailed(c, fieldErrors{"Price": {"must not be negative"}})
		return
	}

	db := config.GetDB()

	catalog := models.Catalog{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := db.Create(&catalog).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Catalog created successfully",
		"data":    catalog,
	})
}

// ShowCatalog handles GET /api/catalog/:catalogId
func ShowCatalog(c *gin.Context) {
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

	// Attach a presigned swatch URL when a photo has been uploaded
	if catalog.ImageS3Key != nil {
		if s3Service := services.GetS3Service(); s3Service != nil {
			if url, err := s3Service.GetPresignedURL(*catalog.ImageS3Key); err == nil && url != "" {
				catalog.ImageURL = &url
			}
		}
	}

	c.JSON(http.StatusOK, catalog)
}

// UpdateCatalog handles POST /api/catalogs/:catalogId (partial update)
func UpdateCatalog(c *gin.Context) {
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

	var req UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		validationFailed(c, fieldErrors{"Price": {"must not be negative"}})
		return
	}

	if req.Name != nil {
		catalog.Name = *req.Name
	}
	if req.Price != nil {
		catalog.Price = *req.Price
	}

	if err := db.Save(&catalog).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog updated successfully",
		"data":    catalog,
	})
}

// DeleteCatalog handles DELETE /api/catalogs/:catalogId
func DeleteCatalog(c *gin.Context) {
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

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("catalog_id = ?", catalog.ID).Delete(&models.Color{}).Error; err != nil {
			return err
		}
		return tx.Delete(&catalog).Error
	})
	if err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catalog deleted successfully"})
}

// SearchCatalogs handles GET /api/catalogs/search?search=
func SearchCatalogs(c *gin.Context) {
	db := config.GetDB()
	perPage, page := utils.PageParams(c)
	search := c.Query("search")

	query := db.Model(&models.Catalog{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		databaseError(c)
		return
	}

	finder := db.Preload("Colors")
	if search != "" {
		finder = finder.Where("name LIKE ?", "%"+search+"%")
	}

	var catalogs []models.Catalog
	if err := finder.Offset(utils.Offset(perPage, page)).Limit(perPage).
		Find(&catalogs).Error; err != nil {
		databaseError(c)
		return
	}

	summaries := make([]gin.H, 0, len(catalogs))
	for _, catalog := range catalogs {
		summaries = append(summaries, catalogSummary(catalog))
	}

	c.JSON(http.StatusOK, gin.H{
		"search": utils.NewPage(summaries, total, perPage, page),
	})
}
