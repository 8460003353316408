package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
	"github.com/ali694519/order/utils"
)

// CreateCustomerRequest is the request body for creating a customer
type CreateCustomerRequest struct {
	FullName       string  `json:"FullName" binding:"required,max=255"`
	Email          string  `json:"Email" binding:"required,email"`
	Country        string  `json:"Country" binding:"required,max=255"`
	PhoneNumber    string  `json:"PhoneNumber" binding:"required,max=20"`
	Address        string  `json:"Address" binding:"required,max=255"`
	Fax            *string `json:"Fax"`
	WebSite        *string `json:"WebSite"`
	ExhibitionName *string `json:"ExhibitionName"`
	Note           *string `json:"Note" binding:"omitempty,max=1000"`
}

// UpdateCustomerRequest carries partial customer fields; absent fields
// keep their current values
type UpdateCustomerRequest struct {
	FullName       *string `json:"FullName" binding:"omitempty,max=255"`
	Email          *string `json:"Email" binding:"omitempty,email"`
	Country        *string `json:"Country" binding:"omitempty,max=255"`
	PhoneNumber    *string `json:"PhoneNumber" binding:"omitempty,max=20"`
	Address        *string `json:"Address" binding:"omitempty,max=255"`
	Fax            *string `json:"Fax"`
	WebSite        *string `json:"WebSite"`
	ExhibitionName *string `json:"ExhibitionName"`
	Note           *string `json:"Note" binding:"omitempty,max=1000"`
}

// GetCustomers handles GET /api/customers (paginated)
func GetCustomers(c *gin.Context) {
	db := config.GetDB()
	perPage, page := utils.PageParams(c)

	var total int64
	if err := db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		databaseError(c)
		return
	}

	var customers []models.Customer
	if err := db.Offset(utils.Offset(perPage, page)).Limit(perPage).Find(&customers).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": utils.NewPage(customers, total, perPage, page),
	})
}

// GetCustomer handles GET /api/customers/:customerId
func GetCustomer(c *gin.Context) {
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

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /api/customers
func CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	db := config.GetDB()

	var count int64
	if err := db.Model(&models.Customer{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		databaseError(c)
		return
	}
	if count > 0 {
		validationFailed(c, fieldErrors{"Email": {"has already been taken"}})
		return
	}

	customer := models.Customer{
		FullName:       req.FullName,
		Email:          req.Email,
		Country:        req.Country,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		Fax:            req.Fax,
		WebSite:        req.WebSite,
		ExhibitionName: req.ExhibitionName,
		Note:           req.Note,
	}
	if err := db.Create(&customer).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"data":    customer,
	})
}

// UpdateCustomer handles POST /api/customers/:customerId (partial update)
func UpdateCustomer(c *gin.Context) {
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

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	if req.Email != nil && *req.Email != customer.Email {
		var count int64
		if err := db.Model(&models.Customer{}).
			Where("email = ? AND id <> ?", *req.Email, customer.ID).
			Count(&count).Error; err != nil {
			databaseError(c)
			return
		}
		if count > 0 {
			validationFailed(c, fieldErrors{"Email": {"has already been taken"}})
			return
		}
		customer.Email = *req.Email
	}
	if req.FullName != nil {
		customer.FullName = *req.FullName
	}
	if req.Country != nil {
		customer.Country = *req.Country
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Fax != nil {
		customer.Fax = req.Fax
	}
	if req.WebSite != nil {
		customer.WebSite = req.WebSite
	}
	if req.ExhibitionName != nil {
		customer.ExhibitionName = req.ExhibitionName
	}
	if req.Note != nil {
		customer.Note = req.Note
	}

	if err := db.Save(&customer).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer updated successfully",
		"client":  customer,
	})
}

// DeleteCustomer handles DELETE /api/customers/:customerId
func DeleteCustomer(c *gin.Context) {
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

	if err := db.Delete(&customer).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
