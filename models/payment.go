package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment was made
type PaymentMethod int

const (
	MethodCash PaymentMethod = 0
	MethodCard PaymentMethod = 1
	MethodBank PaymentMethod = 2
)

// Valid reports whether m is one of the defined payment methods
func (m PaymentMethod) Valid() bool {
	return m == MethodCash || m == MethodCard || m == MethodBank
}

// Payment is an amount recorded against an order's outstanding balance.
// Payments are append-only; no update or delete is exposed.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"Id"`
	OrderID       uint            `gorm:"not null;index" json:"OrderId"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"AmountPaid"`
	PaymentMethod PaymentMethod   `gorm:"not null" json:"PaymentMethod"`
	PaymentDate   time.Time       `gorm:"not null;index" json:"PaymentDate"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
