package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(query string) (int, int) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return PageParams(c)
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		expectedPerPage int
		expectedPage    int
	}{
		{"defaults", "", DefaultPerPage, DefaultPage},
		{"explicit values", "per_page=10&page=3", 10, 3},
		{"malformed values fall back", "per_page=abc&page=xyz", DefaultPerPage, DefaultPage},
		{"zero values fall back", "per_page=0&page=0", DefaultPerPage, DefaultPage},
		{"negative values fall back", "per_page=-5&page=-2", DefaultPerPage, DefaultPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perPage, page := paramsForQuery(tt.query)
			assert.Equal(t, tt.expectedPerPage, perPage)
			assert.Equal(t, tt.expectedPage, page)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(5, 1))
	assert.Equal(t, 5, Offset(5, 2))
	assert.Equal(t, 20, Offset(10, 3))
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name             string
		total            int64
		perPage          int
		page             int
		expectedLastPage int
	}{
		{"empty result", 0, 5, 1, 1},
		{"exact multiple", 10, 5, 1, 2},
		{"partial last page", 7, 5, 1, 2},
		{"single page", 3, 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]string{}, tt.total, tt.perPage, tt.page)
			assert.Equal(t, tt.expectedLastPage, p.LastPage)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.perPage, p.PerPage)
			assert.Equal(t, tt.page, p.CurrentPage)
		})
	}
}
