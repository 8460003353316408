package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
	"github.com/ali694519/order/services"
	"github.com/ali694519/order/utils"
)

// UploadCatalogImage handles POST /api/catalogs/:catalogId/image - uploads
// a PNG swatch photo for a catalog to S3, replacing any previous one
func UploadCatalogImage(c *gin.Context) {
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

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s3Service := services.GetS3Service()
	if s3Service == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "File storage is not configured"})
		return
	}

	s3Key, err := s3Service.UploadFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image"})
		return
	}

	// Replace a previous swatch, if any
	if catalog.ImageS3Key != nil {
		if err := s3Service.DeleteFile(*catalog.ImageS3Key); err != nil {
			// The new upload succeeded; an orphaned old object is acceptable
			c.Error(err)
		}
	}

	catalog.ImageS3Key = &s3Key
	if err := db.Save(&catalog).Error; err != nil {
		databaseError(c)
		return
	}

	imageURL, _ := s3Service.GetPresignedURL(s3Key)

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"data": gin.H{
			"image_s3_key": s3Key,
			"image_url":    imageURL,
		},
	})
}
