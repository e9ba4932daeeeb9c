package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lena-laurent/blanks-inventory-api/config"
	"github.com/lena-laurent/blanks-inventory-api/controllers"
	"github.com/lena-laurent/blanks-inventory-api/middleware"
	"github.com/lena-laurent/blanks-inventory-api/services"
	"github.com/lena-laurent/blanks-inventory-api/storage"
	"github.com/lena-laurent/blanks-inventory-api/store"
)

func main() {
	// Basic logging
	log.Println("Starting Blanks Inventory API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Create the storage gateway and its key-value table
	gateway := storage.NewGateway(config.GetDB())
	if err := gateway.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if !gateway.IsAvailable() {
		log.Println("Warning: persistent storage unavailable, operating in memory only for this session")
	}

	// Build the domain stores; defaults are visible immediately while
	// hydration loads persisted state in the background
	stores := store.New(gateway)
	go stores.Hydrate()

	// Initialize the catalog service and start loading the first page
	catalog := services.InitCatalogService()
	feed := store.NewProductFeed(catalog, cfg.CatalogPageSize)
	feed.Refresh()

	// Initialize Gin router
	router := setupRouter(cfg, stores, gateway, feed)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter configures the router with CORS, controllers and routes
func setupRouter(cfg *config.Config, stores *store.Stores, gateway *storage.Gateway, feed *store.ProductFeed) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	inventoryController := controllers.NewInventoryController(stores)
	orderController := controllers.NewOrderController(stores)
	navigationController := controllers.NewNavigationController(stores)
	productController := controllers.NewProductController(feed)
	storageController := controllers.NewStorageController(gateway, stores)

	hydrated := middleware.RequireHydrated(stores)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck(stores))

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryController.List)
			inventory.POST("", hydrated, inventoryController.Create)
			inventory.PATCH("/:id/quantity", hydrated, inventoryController.UpdateQuantity)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderController.List)
			orders.POST("", hydrated, orderController.Create)
			orders.PATCH("/:id/status", hydrated, orderController.UpdateStatus)
			orders.DELETE("/:id", hydrated, orderController.Delete)
		}

		navigation := v1.Group("/navigation")
		{
			navigation.GET("", navigationController.Get)
			navigation.PUT("", hydrated, navigationController.Update)
		}

		products := v1.Group("/products")
		{
			products.GET("", productController.Feed)
			products.GET("/:id", productController.GetByID)
			products.POST("/refresh", productController.Refresh)
			products.POST("/load-more", productController.LoadMore)
		}

		storageGroup := v1.Group("/storage")
		{
			storageGroup.GET("/status", storageController.Status)
			storageGroup.DELETE("", hydrated, storageController.Clear)
		}
	}

	return router
}

// healthCheck reports service liveness and per-store hydration state
func healthCheck(stores *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Blanks Inventory API is running",
			"stores": gin.H{
				"inventory":  stores.Inventory.State().String(),
				"orders":     stores.Orders.State().String(),
				"navigation": stores.Navigation.State().String(),
			},
		})
	}
}
