package main

import (
	"log"
	"net/http"
	"strings"

	"ems-backend/employee-service/handlers"
	"ems-backend/employee-service/middleware"
	"ems-backend/shared/config"
	"ems-backend/shared/database"
	"ems-backend/shared/database/models"
	"ems-backend/shared/utils/cache"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Redis is optional; without it revoked tokens stay valid until
	// expiry and stats are computed on every request
	if err := cache.InitCacheManager(); err != nil {
		log.Printf("Warning: cache manager unavailable: %v", err)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.GetConfig().FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Employee routes
	api := router.Group("/api/employees", middleware.AuthMiddleware())
	api.GET("/stats", handlers.GetEmployeeStats)
	api.GET("/search/:key", handlers.SearchEmployees)
	api.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleManager), handlers.CreateEmployee)
	api.GET("", handlers.GetEmployees)
	api.GET("/:id", handlers.GetEmployee)
	api.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleManager), handlers.UpdateEmployee)
	api.PUT("/:id/photo", handlers.UploadEmployeePhoto)
	api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), handlers.DeleteEmployee)

	// Profile photos are served by reference path
	router.GET("/uploads/profiles/:filename", handlers.GetProfilePhoto)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "employee",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Parse port from config URL
	port := strings.Split(config.GetConfig().EmployeeServiceURL, ":")[2]
	log.Printf("Employee Service starting on port %s...", port)
	router.Run(":" + port)
}
