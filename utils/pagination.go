package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPerPage is the page size used when per_page is absent
	DefaultPerPage = 5
	// DefaultPage is the page number used when page is absent
	DefaultPage = 1
)

// Page is the envelope every paginated listing returns
type Page struct {
	CurrentPage int         `json:"current_page"`
	Data        interface{} `json:"data"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	LastPage    int         `json:"last_page"`
}

// PageParams reads per_page and page from the query string, falling back
// to the defaults on absent or malformed values
func PageParams(c *gin.Context) (perPage, page int) {
	perPage = DefaultPerPage
	page = DefaultPage

	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 {
		perPage = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	return perPage, page
}

// Offset returns the row offset for a page
func Offset(perPage, page int) int {
	return (page - 1) * perPage
}

// NewPage assembles the pagination envelope for a slice of results
func NewPage(data interface{}, total int64, perPage, page int) Page {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Page{
		CurrentPage: page,
		Data:        data,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
