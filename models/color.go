package models

import (
	"github.com/shopspring/decimal"
)

// Color is a color variant of a catalog with the quantity in stock, in meters
type Color struct {
	ID        uint            `gorm:"primaryKey" json:"Id"`
	CatalogID uint            `gorm:"not null;index" json:"CatalogId"`
	Name      string          `gorm:"not null" json:"Name"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"Quantity"`
}

// TableName specifies the table name for the Color model
func (Color) TableName() string {
	return "colors"
}
