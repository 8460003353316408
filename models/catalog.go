package models

import (
	"github.com/shopspring/decimal"
)

// Catalog is a fabric product with a base price per meter and
// color/quantity variants
type Catalog struct {
	ID         uint            `gorm:"primaryKey" json:"Id"`
	Name       string          `gorm:"not null" json:"Name"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"Price"`
	ImageS3Key *string         `json:"image_s3_key,omitempty"` // nullable, S3 key for the sample swatch photo
	ImageURL   *string         `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL for the swatch
	Colors     []Color         `gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Catalog model
func (Catalog) TableName() string {
	return "catalogs"
}
