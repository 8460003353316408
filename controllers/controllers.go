package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// fieldErrors is the 422 payload shape for failed field validation
type fieldErrors map[string][]string

func (f fieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

// validationFailed writes the structured 422 response for invalid input
func validationFailed(c *gin.Context, errs fieldErrors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid",
		"errors":  errs,
	})
}

// bindingFailed writes the 422 response for a request body that did not bind
func bindingFailed(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid",
		"errors":  err.Error(),
	})
}

// databaseError writes the generic 500 response
func databaseError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Database error",
	})
}

// pathID parses a numeric path parameter. Ids are integer columns, so a
// non-numeric value is answered with a 400 instead of reaching the database.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": name + " must be an integer"})
		return 0, false
	}
	return id, true
}

// queryID parses a required numeric query parameter
func queryID(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": name + " is required"})
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": name + " must be an integer"})
		return 0, false
	}
	return id, true
}
