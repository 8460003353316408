package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ali694519/order/models"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestItemTotal(t *testing.T) {
	item := models.Item{
		CountOfMeters: dec("3"),
		MeterPrice:    dec("10"),
	}
	assert.True(t, dec("30").Equal(ItemTotal(item)))
}

func TestSubTotalAndOrderTotal(t *testing.T) {
	items := []models.Item{
		{CountOfMeters: dec("3"), MeterPrice: dec("10")},
		{CountOfMeters: dec("2"), MeterPrice: dec("5")},
	}

	assert.True(t, dec("40").Equal(SubTotal(items)))
	assert.True(t, dec("40").Equal(OrderTotal(items, decimal.Zero)))
	assert.True(t, dec("35").Equal(OrderTotal(items, dec("5"))))
}

func TestSubTotalEmptyItems(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(SubTotal(nil)))
}

// TestMoneyDecimalExactness pins the reason decimals are used: 0.1 meters
// at 0.2 per meter must come out exactly, not as a float artifact
func TestMoneyDecimalExactness(t *testing.T) {
	items := []models.Item{
		{CountOfMeters: dec("0.1"), MeterPrice: dec("0.2")},
	}
	assert.Equal(t, "0.02", SubTotal(items).String())

	total := OrderTotal([]models.Item{
		{CountOfMeters: dec("1.1"), MeterPrice: dec("9.99")},
	}, dec("0.989"))
	assert.Equal(t, "10", total.String())
}

func TestTotalPaidAndRemaining(t *testing.T) {
	payments := []models.Payment{
		{AmountPaid: dec("15")},
		{AmountPaid: dec("10")},
	}

	totalPaid := TotalPaid(payments)
	assert.True(t, dec("25").Equal(totalPaid))
	assert.True(t, dec("15").Equal(Remaining(dec("40"), totalPaid)))
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		totalPaid string
		total     string
		expected  models.OrderStatus
	}{
		{"nothing paid", "0", "40", models.StatusDraft},
		{"partial payment", "15", "40", models.StatusPartial},
		{"one cent short", "39.99", "40", models.StatusPartial},
		{"exact settlement", "40", "40", models.StatusPaid},
		{"over total", "41", "40", models.StatusPaid},
		{"zero total zero paid", "0", "0", models.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(dec(tt.totalPaid), dec(tt.total)))
		})
	}
}
