package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
	"github.com/ali694519/order/services"
	"github.com/ali694519/order/utils"
)

// AddPaymentRequest is the request body for recording a payment
type AddPaymentRequest struct {
	AmountPaid    decimal.Decimal `json:"AmountPaid" binding:"required"`
	PaymentMethod *int            `json:"PaymentMethod" binding:"required"`
	PaymentDate   string          `json:"PaymentDate" binding:"required"`
}

var errPaymentExceedsTotal = errors.New("payment amount exceeds the total order amount")

// AddPayment handles POST /api/orders/:orderId/payments.
// The read-check-write sequence runs inside a transaction with a row lock
// on the order, so two concurrent payments cannot both pass the
// overpayment check against a stale paid total.
func AddPayment(c *gin.Context) {
	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	errs := fieldErrors{}
	if !req.AmountPaid.IsPositive() {
		errs.add("AmountPaid", "must be greater than zero")
	}
	if !models.PaymentMethod(*req.PaymentMethod).Valid() {
		errs.add("PaymentMethod", "must be one of 0, 1, 2")
	}
	paymentDate, dateErr := utils.ParseDate(req.PaymentDate)
	if dateErr != nil {
		errs.add("PaymentDate", dateErr.Error())
	}
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	db := config.GetDB()

	var payment models.Payment
	var totalPaid decimal.Decimal
	var newStatus models.OrderStatus

	err := db.Transaction(func(tx *gorm.DB) error {
		query := tx
		// SQLite (used in tests) has no SELECT ... FOR UPDATE; its single
		// writer provides the same isolation there.
		if tx.Dialector.Name() != "sqlite" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var order models.Order
		if err := query.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		var items []models.Item
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		var payments []models.Payment
		if err := tx.Where("order_id = ?", order.ID).Find(&payments).Error; err != nil {
			return err
		}

		totalPaidBefore := services.TotalPaid(payments)
		orderTotal := services.OrderTotal(items, order.Discount)

		// Exact settlement is allowed, any excess is rejected
		if totalPaidBefore.Add(req.AmountPaid).GreaterThan(orderTotal) {
			return errPaymentExceedsTotal
		}

		payment = models.Payment{
			OrderID:       order.ID,
			AmountPaid:    req.AmountPaid,
			PaymentMethod: models.PaymentMethod(*req.PaymentMethod),
			PaymentDate:   paymentDate,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		totalPaid = totalPaidBefore.Add(req.AmountPaid)
		newStatus = services.DeriveStatus(totalPaid, orderTotal)
		order.Status = newStatus
		return tx.Save(&order).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		case errors.Is(err, errPaymentExceedsTotal):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payment amount exceeds the total order amount"})
		default:
			databaseError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Payment added successfully",
		"payment":     payment,
		"totalPaid":   totalPaid,
		"orderStatus": newStatus,
	})
}

// GetCustomerStatement handles GET /api/customers/:customerId/statement.
// For each of the customer's orders it reports the total, what has been
// paid, the remaining balance, and the full payment list.
func GetCustomerStatement(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}

	db := config.GetDB()

	var orders []models.Order
	if err := db.Preload("Items").Preload("Payments").
		Where("customer_id = ? AND is_deleted = ?", customerID, false).
		Find(&orders).Error; err != nil {
		databaseError(c)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No orders found for this customer"})
		return
	}

	statements := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		total := services.OrderTotal(order.Items, order.Discount)
		totalPaid := services.TotalPaid(order.Payments)

		paymentViews := make([]gin.H, 0, len(order.Payments))
		for _, payment := range order.Payments {
			paymentViews = append(paymentViews, gin.H{
				"amount": payment.AmountPaid,
				"method": payment.PaymentMethod,
				"date":   payment.PaymentDate,
			})
		}

		statements = append(statements, gin.H{
			"order_id":         order.ID,
			"order_total":      total,
			"total_paid":       totalPaid,
			"remaining_amount": services.Remaining(total, totalPaid),
			"payments":         paymentViews,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id": customerID,
		"orders":      statements,
	})
}

// GetPaidOrdersByDate handles GET /api/payments/paid-orders?date=.
// It finds the orders touched by any payment on the given date and keeps
// only those that were fully settled by the end of that day.
func GetPaidOrdersByDate(c *gin.Context) {
	dateRaw := c.Query("date")
	if dateRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date is required"})
		return
	}
	date, err := utils.ParseDate(dateRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date is not a valid date"})
		return
	}

	db := config.GetDB()
	dayStart, dayEnd := utils.DayRange(date)

	var dayPayments []models.Payment
	if err := db.Where("payment_date >= ? AND payment_date < ?", dayStart, dayEnd).
		Find(&dayPayments).Error; err != nil {
		databaseError(c)
		return
	}
	if len(dayPayments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No payments found on this date"})
		return
	}

	// Distinct orders touched by a payment that day
	orderIDs := make([]uint, 0, len(dayPayments))
	seen := make(map[uint]bool, len(dayPayments))
	for _, payment := range dayPayments {
		if !seen[payment.OrderID] {
			seen[payment.OrderID] = true
			orderIDs = append(orderIDs, payment.OrderID)
		}
	}

	var orders []models.Order
	if err := db.Preload("Customer").Preload("Items").Preload("Payments").
		Where("id IN ? AND is_deleted = ?", orderIDs, false).
		Find(&orders).Error; err != nil {
		databaseError(c)
		return
	}

	settled := make([]gin.H, 0, len(orders))
	totalAmount := decimal.Zero
	finalAmount := decimal.Zero
	for _, order := range orders {
		subTotal := services.SubTotal(order.Items)
		total := subTotal.Sub(order.Discount)

		// Paid-to-date: payments up to the end of the queried day
		paidToDate := decimal.Zero
		for _, payment := range order.Payments {
			if payment.PaymentDate.Before(dayEnd) {
				paidToDate = paidToDate.Add(payment.AmountPaid)
			}
		}
		if paidToDate.LessThan(total) {
			continue
		}

		settled = append(settled, gin.H{
			"Number":        order.Number,
			"Date":          order.Date,
			"PaymentDate":   order.PaymentDate,
			"sub_total":     subTotal,
			"Discount":      order.Discount,
			"total":         total,
			"total_paid":    paidToDate,
			"customer_name": order.Customer.FullName,
		})
		totalAmount = totalAmount.Add(subTotal)
		finalAmount = finalAmount.Add(total)
	}

	perPage, page := utils.PageParams(c)
	start := utils.Offset(perPage, page)
	if start > len(settled) {
		start = len(settled)
	}
	end := start + perPage
	if end > len(settled) {
		end = len(settled)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         utils.NewPage(settled[start:end], int64(len(settled)), perPage, page),
		"total_amount": totalAmount,
		"final_amount": finalAmount,
	})
}
