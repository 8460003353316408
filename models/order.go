package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus reflects how far an order's payments cover its total
type OrderStatus int

const (
	StatusDraft   OrderStatus = 0 // no payments recorded
	StatusPartial OrderStatus = 1 // paid something, but less than the total
	StatusPaid    OrderStatus = 2 // payments cover the total
)

// Valid reports whether s is one of the defined status values
func (s OrderStatus) Valid() bool {
	return s == StatusDraft || s == StatusPartial || s == StatusPaid
}

// Order represents a customer's fabric order composed of line items.
// Number is the human-facing 6-digit identifier, unique and stable once
// assigned. Status is a cached projection of payments vs. total.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"Id"`
	Number      int             `gorm:"uniqueIndex;not null" json:"Number"`
	CustomerID  uint            `gorm:"not null;index" json:"CustomerId"`
	Customer    Customer        `gorm:"foreignKey:CustomerID" json:"-"`
	Date        time.Time       `gorm:"not null" json:"Date"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"Discount"`
	Note        *string         `json:"Note"`
	Status      OrderStatus     `gorm:"not null;default:0" json:"Status"`
	PaymentDate *time.Time      `json:"PaymentDate"`
	IsDeleted   bool            `gorm:"not null;default:false;index" json:"IsDeleted"`
	Items       []Item          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Payments    []Payment       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
