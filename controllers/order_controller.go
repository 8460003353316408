package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
	"github.com/ali694519/order/services"
	"github.com/ali694519/order/utils"
)

// OrderItemInput is one line of a create-order request
type OrderItemInput struct {
	Catalog       string          `json:"Catalog" binding:"required"`
	ColorNumber   *int            `json:"ColorNumber" binding:"required"`
	CountOfMeters decimal.Decimal `json:"CountOfMeters" binding:"required"`
	MeterPrice    decimal.Decimal `json:"MeterPrice" binding:"required"`
	Note          *string         `json:"Note"`
}

// CreateOrderRequest is the request body for creating an order.
// Absent optional fields fall back to their defaults.
type CreateOrderRequest struct {
	Discount    *decimal.Decimal `json:"Discount"`
	Date        *string          `json:"Date"`
	PaymentDate *string          `json:"PaymentDate"`
	Note        *string          `json:"Note"`
	Status      *int             `json:"status"`
	Items       []OrderItemInput `json:"Items" binding:"required,min=1,dive"`
}

// UpdateItemInput references an existing item of the order by id and
// overwrites its fields
type UpdateItemInput struct {
	ID            uint            `json:"Id" binding:"required"`
	Catalog       string          `json:"Catalog" binding:"required"`
	ColorNumber   *int            `json:"ColorNumber" binding:"required"`
	CountOfMeters decimal.Decimal `json:"CountOfMeters" binding:"required"`
	MeterPrice    decimal.Decimal `json:"MeterPrice" binding:"required"`
	Note          *string         `json:"Note"`
}

// UpdateOrderRequest is the request body for updating an order. Supplied
// fields overwrite, absent fields keep their current values. Items may
// only reference lines that already belong to the order.
type UpdateOrderRequest struct {
	Discount    *decimal.Decimal  `json:"Discount"`
	Date        *string           `json:"Date"`
	PaymentDate *string           `json:"PaymentDate"`
	Note        *string           `json:"Note"`
	Status      *int              `json:"status"`
	Items       []UpdateItemInput `json:"Items" binding:"required,dive"`
}

// validateItemAmounts checks the sign constraints on a line's quantities
func validateItemAmounts(errs fieldErrors, field string, countOfMeters, meterPrice decimal.Decimal) {
	if !countOfMeters.IsPositive() {
		errs.add(field+".CountOfMeters", "must be greater than zero")
	}
	if meterPrice.IsNegative() {
		errs.add(field+".MeterPrice", "must not be negative")
	}
}

// CreateOrder handles POST /api/customers/:customerId/orders
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	errs := fieldErrors{}
	if req.Discount != nil && req.Discount.IsNegative() {
		errs.add("Discount", "must not be negative")
	}
	if req.Status != nil && !models.OrderStatus(*req.Status).Valid() {
		errs.add("status", "must be one of 0, 1, 2")
	}
	for i, item := range req.Items {
		validateItemAmounts(errs, itemField(i), item.CountOfMeters, item.MeterPrice)
	}

	date := services.Now()
	if req.Date != nil {
		parsed, err := utils.ParseDate(*req.Date)
		if err != nil {
			errs.add("Date", err.Error())
		} else {
			date = parsed
		}
	}

	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}

	db := config.GetDB()

	var customer models.Customer
	if err := db.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}
		databaseError(c)
		return
	}

	discount := decimal.Zero
	if req.Discount != nil {
		discount = *req.Discount
	}
	status := models.StatusDraft
	if req.Status != nil {
		status = models.OrderStatus(*req.Status)
	}

	var paymentDate *time.Time
	if status == models.StatusPaid {
		now := services.Now()
		paymentDate = &now
	} else if req.PaymentDate != nil {
		parsed, err := utils.ParseDate(*req.PaymentDate)
		if err != nil {
			validationFailed(c, fieldErrors{"PaymentDate": {err.Error()}})
			return
		}
		paymentDate = &parsed
	}

	// The drawn number can race another create between draw and insert.
	// The unique index on orders.number reports that as a duplicate key,
	// and the whole transaction is retried with a fresh draw.
	var order models.Order
	var items []models.Item
	for {
		order = models.Order{
			Number:      services.RandomOrderNumber(),
			CustomerID:  customer.ID,
			Date:        date,
			Discount:    discount,
			Note:        req.Note,
			Status:      status,
			PaymentDate: paymentDate,
			IsDeleted:   false,
		}
		items = make([]models.Item, 0, len(req.Items))

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			for _, input := range req.Items {
				item := models.Item{
					OrderID:       order.ID,
					Catalog:       input.Catalog,
					ColorNumber:   *input.ColorNumber,
					CountOfMeters: input.CountOfMeters,
					MeterPrice:    input.MeterPrice,
					Note:          input.Note,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				items = append(items, item)
			}
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		databaseError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
		"items":   items,
	})
}

// UpdateOrder handles POST /api/orders/update/:orderId.
// Supplied order fields overwrite, item lines are matched by id. When the
// financial fields change, Status is recomputed from the recorded payments
// unless the caller passes an explicit status override.
func UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	errs := fieldErrors{}
	if req.Discount != nil && req.Discount.IsNegative() {
		errs.add("Discount", "must not be negative")
	}
	if req.Status != nil && !models.OrderStatus(*req.Status).Valid() {
		errs.add("status", "must be one of 0, 1, 2")
	}
	for i, item := range req.Items {
		validateItemAmounts(errs, itemField(i), item.CountOfMeters, item.MeterPrice)
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

	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		databaseError(c)
		return
	}

	var currentItems []models.Item
	if err := db.Where("order_id = ?", order.ID).Find(&currentItems).Error; err != nil {
		databaseError(c)
		return
	}
	itemsByID := make(map[uint]*models.Item, len(currentItems))
	for i := range currentItems {
		itemsByID[currentItems[i].ID] = &currentItems[i]
	}
	for _, input := range req.Items {
		if _, ok := itemsByID[input.ID]; !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
	}

	if req.Discount != nil {
		order.Discount = *req.Discount
	}
	if req.Date != nil {
		parsed, err := utils.ParseDate(*req.Date)
		if err != nil {
			validationFailed(c, fieldErrors{"Date": {err.Error()}})
			return
		}
		order.Date = parsed
	}
	if req.Note != nil {
		order.Note = req.Note
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, input := range req.Items {
			item := itemsByID[input.ID]
			item.Catalog = input.Catalog
			item.ColorNumber = *input.ColorNumber
			item.CountOfMeters = input.CountOfMeters
			item.MeterPrice = input.MeterPrice
			if input.Note != nil {
				item.Note = input.Note
			}
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}

		// Editing discount or item lines can move the total away from the
		// cached Status, so re-derive it from the recorded payments. An
		// explicit status in the request wins over the derived value.
		if req.Status != nil {
			order.Status = models.OrderStatus(*req.Status)
		} else {
			var payments []models.Payment
			if err := tx.Where("order_id = ?", order.ID).Find(&payments).Error; err != nil {
				return err
			}
			totalPaid := services.TotalPaid(payments)
			total := services.OrderTotal(currentItems, order.Discount)
			order.Status = services.DeriveStatus(totalPaid, total)
		}

		if order.Status == models.StatusPaid {
			now := services.Now()
			order.PaymentDate = &now
		} else if req.PaymentDate != nil {
			parsed, err := utils.ParseDate(*req.PaymentDate)
			if err != nil {
				return errInvalidPaymentDate
			}
			order.PaymentDate = &parsed
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		if errors.Is(err, errInvalidPaymentDate) {
			validationFailed(c, fieldErrors{"PaymentDate": {"invalid date"}})
			return
		}
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   order,
		"items":   currentItems,
	})
}

var errInvalidPaymentDate = errors.New("invalid payment date")

// DeleteOrder handles DELETE /api/order/delete?OrderId= (soft delete)
func DeleteOrder(c *gin.Context) {
	orderID, ok := queryID(c, "OrderId")
	if !ok {
		return
	}

	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		databaseError(c)
		return
	}

	order.IsDeleted = true
	if err := db.Save(&order).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// DeleteOrderPermanently handles DELETE /api/order/delete-permanently?OrderId=.
// Items and payments are removed in the same transaction, so the cleanup
// does not depend on the database enforcing cascades.
func DeleteOrderPermanently(c *gin.Context) {
	orderID, ok := queryID(c, "OrderId")
	if !ok {
		return
	}

	db := config.GetDB()

	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		databaseError(c)
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order permanently deleted successfully"})
}

// RestoreOrders handles PATCH /api/orders/restore?CustomerId= and flips
// IsDeleted back for every soft-deleted order of the customer
func RestoreOrders(c *gin.Context) {
	customerID, ok := queryID(c, "CustomerId")
	if !ok {
		return
	}

	db := config.GetDB()

	result := db.Model(&models.Order{}).
		Where("customer_id = ? AND is_deleted = ?", customerID, true).
		Update("is_deleted", false)
	if result.Error != nil {
		databaseError(c)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No deleted orders found for this customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Orders restored successfully",
		"restored_count": result.RowsAffected,
	})
}

// GetOrders handles GET /api/orders - all non-deleted orders, enriched
func GetOrders(c *gin.Context) {
	paginatedOrders(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_deleted = ?", false)
	}, false)
}

// GetCustomerOrders handles GET /api/customers/:customerId/orders
func GetCustomerOrders(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}
	paginatedOrders(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("customer_id = ? AND is_deleted = ?", customerID, false)
	}, false)
}

// GetDeletedOrders handles GET /api/orders/deleted - the explicit
// soft-deleted view
func GetDeletedOrders(c *gin.Context) {
	paginatedOrders(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_deleted = ?", true)
	}, false)
}

// GetOrdersByStatus handles GET /api/orders/status?status=0|1|2
func GetOrdersByStatus(c *gin.Context) {
	status := c.Query("status")
	if status != "0" && status != "1" && status != "2" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status must be one of 0, 1, 2"})
		return
	}

	paginatedOrders(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("status = ? AND is_deleted = ?", status, false)
	}, true)
}

// SearchOrdersByDate handles GET /api/orders/search?start_date=&end_date=
func SearchOrdersByDate(c *gin.Context) {
	startRaw := c.Query("start_date")
	endRaw := c.Query("end_date")
	if startRaw == "" || endRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "start_date and end_date are required"})
		return
	}

	start, err := utils.ParseDate(startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "start_date is not a valid date"})
		return
	}
	end, err := utils.ParseDate(endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "end_date is not a valid date"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "end_date must be on or after start_date"})
		return
	}

	// Include the whole end day
	endExclusive := end.AddDate(0, 0, 1)
	paginatedOrders(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("date >= ? AND date < ? AND is_deleted = ?", start, endExclusive, false)
	}, false)
}

// GetOrderDetails handles GET /api/orders/details?CustomerId=&OrderId= and
// returns the formatted single-order view with per-line totals
func GetOrderDetails(c *gin.Context) {
	customerID, ok := queryID(c, "CustomerId")
	if !ok {
		return
	}
	orderID, ok := queryID(c, "OrderId")
	if !ok {
		return
	}

	db := config.GetDB()

	var order models.Order
	err := db.Preload("Customer").Preload("Items").
		Where("id = ? AND customer_id = ? AND is_deleted = ?", orderID, customerID, false).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		databaseError(c)
		return
	}

	subTotal := services.SubTotal(order.Items)
	total := subTotal.Sub(order.Discount)

	itemViews := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		itemViews = append(itemViews, gin.H{
			"Catalog":       item.Catalog,
			"ColorNumber":   item.ColorNumber,
			"CountOfMeters": item.CountOfMeters,
			"MeterPrice":    item.MeterPrice,
			"item_total":    services.ItemTotal(item),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"order_number":  order.Number,
		"order_date":    order.Date,
		"sub_total":     subTotal,
		"discount":      order.Discount,
		"total":         total,
		"note":          order.Note,
		"customer_name": order.Customer.FullName,
		"items":         itemViews,
	})
}

// orderProjection maps an order (with Customer and Items preloaded) to the
// enriched listing shape
func orderProjection(order models.Order, includeStatus bool) gin.H {
	subTotal := services.SubTotal(order.Items)
	projection := gin.H{
		"Number":        order.Number,
		"Date":          order.Date,
		"PaymentDate":   order.PaymentDate,
		"sub_total":     subTotal,
		"Discount":      order.Discount,
		"total":         subTotal.Sub(order.Discount),
		"Note":          order.Note,
		"customer_name": order.Customer.FullName,
	}
	if includeStatus {
		projection["Status"] = order.Status
	}
	return projection
}

// paginatedOrders runs a scoped, paginated order listing and writes the
// enriched page envelope
func paginatedOrders(c *gin.Context, scope func(*gorm.DB) *gorm.DB, includeStatus bool) {
	db := config.GetDB()
	perPage, page := utils.PageParams(c)

	var total int64
	if err := scope(db.Model(&models.Order{})).Count(&total).Error; err != nil {
		databaseError(c)
		return
	}

	var orders []models.Order
	err := scope(db.Preload("Customer").Preload("Items")).
		Offset(utils.Offset(perPage, page)).
		Limit(perPage).
		Find(&orders).Error
	if err != nil {
		databaseError(c)
		return
	}

	projections := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		projections = append(projections, orderProjection(order, includeStatus))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": utils.NewPage(projections, total, perPage, page),
	})
}

// itemField names an Items entry in validation error keys
func itemField(i int) string {
	return "Items." + strconv.Itoa(i)
}
