package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vesta-pos/vesta-api/config"
	"github.com/vesta-pos/vesta-api/controllers"
	"github.com/vesta-pos/vesta-api/middleware"
	"github.com/vesta-pos/vesta-api/models"
)

func main() {
	log.Println("Starting Vesta POS API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Establishment{},
		&models.SalesArea{},
		&models.ServiceSpot{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Menu{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := SetupRouter(cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// SetupRouter builds the Gin engine with middleware and all API routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.PrincipalHeader},
		AllowCredentials: true,
	}))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		authed := v1.Group("")
		authed.Use(middleware.RequirePrincipal())
		{
			orders := authed.Group("/orders")
			{
				orders.GET("", controllers.ListOrders)
				orders.POST("", controllers.CreateOrder)
				orders.GET("/:id", controllers.GetOrder)
				orders.PUT("/:id", controllers.UpdateOrder)
				orders.PATCH("/:id/status", controllers.UpdateOrderStatus)
				orders.DELETE("/:id", controllers.DeleteOrder)
				orders.POST("/:id/items", controllers.AddOrderItem)
				orders.PATCH("/:id/items/:itemId", controllers.UpdateOrderItemQuantity)
				orders.PATCH("/:id/items/:itemId/status", controllers.UpdateOrderItemStatus)
				orders.DELETE("/:id/items/:itemId", controllers.DeleteOrderItem)
			}

			authed.GET("/kitchen/pending-items", controllers.ListPendingItems)

			spots := authed.Group("/service-spots")
			{
				spots.GET("", controllers.ListServiceSpots)
				spots.PATCH("/:id/status", controllers.UpdateServiceSpotStatus)
				spots.POST("/reset", controllers.ResetServiceSpots)
			}
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vesta POS API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
