package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/config"
	"github.com/jyogi-studio/jyogi-manager-api/controllers"
	"github.com/jyogi-studio/jyogi-manager-api/middleware"
	"github.com/jyogi-studio/jyogi-manager-api/services"
)

func main() {
	log.Println("Starting Jyogi Manager API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Failed to open workbook store: %v", err)
	}

	services.InitWorkbookService()
	services.InitImageService(cfg.ImageDir)

	// Missing tables are created now; a failure here is retried on the
	// next load or save rather than treated as fatal.
	if err := services.GetWorkbookService().EnsureWorkbook(); err != nil {
		log.Printf("Workbook setup failed (will retry): %v", err)
	}

	router := setupRouter(cfg)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the full route table. Admin state is resolved for
// every request; public mode is enforced before any page controller runs.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AdminSession(cfg), middleware.PublicMode(cfg))
	{
		v1.GET("/health", healthCheck)

		v1.POST("/auth/login", controllers.Login(cfg))
		v1.POST("/auth/logout", controllers.Logout)

		v1.GET("/dashboard", controllers.GetDashboard)

		v1.GET("/orders", controllers.ListOrders)
		v1.POST("/orders", controllers.CreateOrder)
		v1.PUT("/orders", controllers.ReplaceOrders)

		v1.GET("/healings", controllers.ListHealings)
		v1.POST("/healings", controllers.CreateHealing)
		v1.PUT("/healings", controllers.ReplaceHealings)

		v1.GET("/readings", controllers.ListReadings)
		v1.POST("/readings", controllers.CreateReading)
		v1.PUT("/readings", controllers.ReplaceReadings)

		v1.GET("/suppliers", controllers.ListSuppliers)
		v1.POST("/suppliers", controllers.CreateSupplier)
		v1.PUT("/suppliers", controllers.ReplaceSuppliers)

		// Showcase surfaces: share links and review submission stay open
		designs := v1.Group("/designs")
		{
			designs.GET("/:id/share", controllers.GetDesignShareLink)
			designs.POST("/:id/reviews", controllers.CreateReview)

			adminDesigns := designs.Group("", middleware.RequireAdmin())
			{
				adminDesigns.GET("", controllers.ListDesigns)
				adminDesigns.POST("", controllers.CreateDesign)
				adminDesigns.PUT("", controllers.ReplaceDesigns)
				adminDesigns.POST("/prune", controllers.PruneDesigns)
				adminDesigns.DELETE("/:id", controllers.DeleteDesign)
			}
		}

		reviews := v1.Group("/reviews", middleware.RequireAdmin())
		{
			reviews.GET("", controllers.ListReviews)
			reviews.PUT("", controllers.ReplaceReviews)
		}

		v1.GET("/showcase", controllers.GetShowcase)
		v1.GET("/uploads/:filename", controllers.GetUploadedImage)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Jyogi Manager API is running",
	})
}
