package main

import (
	"log"
	"net/http"
	"strings"

	"ems-backend/auth-service/handlers"
	"ems-backend/auth-service/middleware"
	"ems-backend/shared/config"
	"ems-backend/shared/database"
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

	// Redis is optional; without it logout revocation is disabled
	if err := cache.InitCacheManager(); err != nil {
		log.Printf("Warning: cache manager unavailable: %v", err)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.GetConfig().FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	authHandler := handlers.NewAuthHandler(database.GetDB())

	// Public routes
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	// Protected routes
	protected := router.Group("/api/auth", middleware.AuthMiddleware())
	protected.GET("/me", authHandler.Me)
	protected.POST("/logout", authHandler.Logout)
	protected.PUT("/change-password", authHandler.ChangePassword)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "auth",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Parse port from config URL
	port := strings.Split(config.GetConfig().AuthServiceURL, ":")[2]
	log.Printf("Auth Service starting on port %s...", port)
	router.Run(":" + port)
}
