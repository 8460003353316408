package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testRouterConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTTTLMinutes: 60,
		GoEnv:         "test",
	}
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(testRouterConfig())

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

// TestSetupRouter builds the full route table; a conflicting static and
// parameterized route would panic here
func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NotPanics(t, func() {
		setupRouter(testRouterConfig())
	})
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Customer{}, &models.Order{}))
	config.SetDB(db)

	router := setupRouter(testRouterConfig())

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/orders"},
		{"GET", "/api/customers"},
		{"GET", "/api/catalogs"},
		{"DELETE", "/api/order/delete?OrderId=1"},
		{"GET", "/api/payments/paid-orders?date=2024-06-11"},
	}

	for _, p := range paths {
		req, _ := http.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should require a token", p.method, p.path)
	}
}
