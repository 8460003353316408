package services

import (
	"github.com/shopspring/decimal"

	"github.com/ali694519/order/models"
)

// Money calculations for orders. All functions are pure: they take the
// order's line items and recorded payments and derive financial figures
// with fixed-point decimals. Float arithmetic is never used for money.

// ItemTotal returns the value of a single line: CountOfMeters x MeterPrice
func ItemTotal(item models.Item) decimal.Decimal {
	return item.CountOfMeters.Mul(item.MeterPrice)
}

// SubTotal returns the sum of item totals across an order's lines,
// before discount
func SubTotal(items []models.Item) decimal.Decimal {
	subTotal := decimal.Zero
	for _, item := range items {
		subTotal = subTotal.Add(ItemTotal(item))
	}
	return subTotal
}

// OrderTotal returns the amount owed: sub_total minus discount
func OrderTotal(items []models.Item, discount decimal.Decimal) decimal.Decimal {
	return SubTotal(items).Sub(discount)
}

// TotalPaid returns the cumulative amount recorded against an order
func TotalPaid(payments []models.Payment) decimal.Decimal {
	totalPaid := decimal.Zero
	for _, payment := range payments {
		totalPaid = totalPaid.Add(payment.AmountPaid)
	}
	return totalPaid
}

// Remaining returns the outstanding balance: total minus cumulative payments
func Remaining(total, totalPaid decimal.Decimal) decimal.Decimal {
	return total.Sub(totalPaid)
}

// DeriveStatus maps payment coverage to an order status: Paid when the
// payments cover the total, Partial when something has been paid, Draft
// when nothing has
func DeriveStatus(totalPaid, total decimal.Decimal) models.OrderStatus {
	switch {
	case totalPaid.GreaterThanOrEqual(total):
		return models.StatusPaid
	case totalPaid.GreaterThan(decimal.Zero):
		return models.StatusPartial
	default:
		return models.StatusDraft
	}
}
