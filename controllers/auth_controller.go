package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/middleware"
	"github.com/ali694519/order/models"
	"github.com/ali694519/order/services"
)

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	db := config.GetDB()

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		databaseError(c)
		return
	}
	if count > 0 {
		validationFailed(c, fieldErrors{"email": {"has already been taken"}})
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		databaseError(c)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User successfully registered",
		"user":    user,
	})
}

// Login handles POST /api/auth/login and issues a bearer token
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingFailed(c, err)
		return
	}

	db := config.GetDB()
	cfg := config.GetConfig()

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		databaseError(c)
		return
	}

	if !services.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := services.GenerateToken(cfg, &user)
	if err != nil {
		databaseError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   cfg.JWTTTLMinutes * 60,
		"user":         user,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, clients
// discard them on sign-out.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "User successfully signed out"})
}

// UserProfile handles GET /api/auth/user-profile
func UserProfile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	db := config.GetDB()

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
