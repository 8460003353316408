package models

import (
	"github.com/shopspring/decimal"
)

// Item is a single product line within an order. Catalog is a free-text
// product label, not a foreign key to the Catalog entity.
type Item struct {
	ID            uint            `gorm:"primaryKey" json:"Id"`
	OrderID       uint            `gorm:"not null;index" json:"OrderId"`
	Catalog       string          `gorm:"not null" json:"Catalog"`
	ColorNumber   int             `gorm:"not null" json:"ColorNumber"`
	CountOfMeters decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"CountOfMeters"`
	MeterPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"MeterPrice"`
	Note          *string         `json:"Note"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
