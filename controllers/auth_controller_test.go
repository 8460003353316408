package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/middleware"
)

func performAuthedRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTTTLMinutes: 60,
		GoEnv:         "test",
	}
}

// setupAuthRouter wires the auth routes with the real middleware so the
// token flow is exercised end to end
func setupAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	api.POST("/auth/register", Register)
	api.POST("/auth/login", Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(cfg))
	protected.POST("/auth/logout", Logout)
	protected.GET("/auth/user-profile", UserProfile)

	return router
}

func registerBody(name, email, password string) map[string]interface{} {
	return map[string]interface{}{"name": name, "email": email, "password": password}
}

func TestRegister(t *testing.T) {
	setupTestDB(t)
	config.SetConfig(testConfig())
	router := setupAuthRouter(config.GetConfig())

	t.Run("register new user", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/auth/register", registerBody("Amira Haddad", "amira@example.com", "secret123"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		response := parseResponse(t, w)
		assert.Equal(t, "User successfully registered", response["message"])

		user := response["user"].(map[string]interface{})
		assert.Equal(t, "amira@example.com", user["email"])
		// The password hash never leaves the server
		_, exposed := user["password"]
		assert.False(t, exposed)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/auth/register", registerBody("Amira Again", "amira@example.com", "secret123"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/auth/register", registerBody("Jonas Visser", "not-an-email", "secret123"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/auth/register", registerBody("Jonas Visser", "jonas@example.com", "abc"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestLoginAndProfile(t *testing.T) {
	setupTestDB(t)
	config.SetConfig(testConfig())
	router := setupAuthRouter(config.GetConfig())

	w := performRequest(router, "POST", "/api/auth/register", registerBody("Amira Haddad", "amira@example.com", "secret123"))
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("wrong password", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/auth/login", map[string]interface{}{
			"email": "amira@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", parseResponse(t, w)["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/auth/login", map[string]interface{}{
			"email": "ghost@example.com", "password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var token string
	t.Run("successful login", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/auth/login", map[string]interface{}{
			"email": "amira@example.com", "password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		response := parseResponse(t, w)
		assert.Equal(t, "bearer", response["token_type"])
		assert.Equal(t, float64(3600), response["expires_in"])
		token = response["access_token"].(string)
		assert.NotEmpty(t, token)
	})

	t.Run("profile with token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/user-profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := performAuthedRequest(router, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		response := parseResponse(t, w)
		assert.Equal(t, "amira@example.com", response["email"])
	})

	t.Run("profile without token", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/auth/user-profile", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", parseResponse(t, w)["message"])
	})

	t.Run("logout", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := performAuthedRequest(router, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User successfully signed out", parseResponse(t, w)["message"])
	})
}
