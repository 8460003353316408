package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/controllers"
	"github.com/ali694519/order/middleware"
	"github.com/ali694519/order/models"
	"github.com/ali694519/order/services"
)

func main() {
	log.Println("Starting fabric order management API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Catalog{},
		&models.Color{},
		&models.Order{},
		&models.Item{},
		&models.Payment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if _, err := services.InitS3Service(); err != nil {
		log.Printf("S3 service not available, image uploads disabled: %v", err)
	}

	router := setupRouter(cfg)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all API routes
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	api := router.Group("/api")

	api.GET("/health", healthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(cfg))
	{
		protected.POST("/auth/logout", controllers.Logout)
		protected.GET("/auth/user-profile", controllers.UserProfile)

		// Customers
		protected.GET("/customers", controllers.GetCustomers)
		protected.POST("/customers", controllers.CreateCustomer)
		protected.GET("/customers/:customerId", controllers.GetCustomer)
		protected.POST("/customers/:customerId", controllers.UpdateCustomer)
		protected.DELETE("/customers/:customerId", controllers.DeleteCustomer)

		// Catalogs and color variants
		protected.GET("/catalogs", controllers.GetCatalogs)
		protected.POST("/catalogs", controllers.CreateCatalog)
		protected.GET("/catalogs/search", controllers.SearchCatalogs)
		protected.GET("/catalog/:catalogId", controllers.ShowCatalog)
		protected.POST("/catalogs/:catalogId", controllers.UpdateCatalog)
		protected.DELETE("/catalogs/:catalogId", controllers.DeleteCatalog)
		protected.POST("/catalogs/:catalogId/colors", controllers.AddColors)
		protected.GET("/catalogs/:catalogId/colors", controllers.GetColors)
		protected.POST("/catalogs/:catalogId/colors/update", controllers.UpdateColors)
		protected.POST("/catalogs/:catalogId/image", controllers.UploadCatalogImage)

		// Orders
		protected.POST("/customers/:customerId/orders", controllers.CreateOrder)
		protected.GET("/customers/:customerId/orders", controllers.GetCustomerOrders)
		protected.GET("/customers/:customerId/statement", controllers.GetCustomerStatement)
		protected.GET("/orders", controllers.GetOrders)
		protected.GET("/orders/details", controllers.GetOrderDetails)
		protected.GET("/orders/deleted", controllers.GetDeletedOrders)
		protected.GET("/orders/status", controllers.GetOrdersByStatus)
		protected.GET("/orders/search", controllers.SearchOrdersByDate)
		protected.POST("/orders/update/:orderId", controllers.UpdateOrder)
		protected.PATCH("/orders/restore", controllers.RestoreOrders)
		protected.DELETE("/order/delete", controllers.DeleteOrder)
		protected.DELETE("/order/delete-permanently", controllers.DeleteOrderPermanently)

		// Payments
		protected.POST("/orders/:orderId/payments", controllers.AddPayment)
		protected.GET("/payments/paid-orders", controllers.GetPaidOrdersByDate)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fabric order management API is running",
	})
}
