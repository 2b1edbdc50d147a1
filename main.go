package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/ideahub-simple/api/v1"
	"github.com/ideahub-simple/config"
	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/lib/security"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize database
	database.Initialize()

	// Initialize the Redis-backed token store. Without Redis the service
	// still runs, but logout revocation and login lockout are disabled.
	var store *security.TokenStore
	redisURL := config.GetEnv("REDIS_URL", "")
	if redisURL != "" {
		var err error
		store, err = security.NewTokenStore(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		log.Println("✅ Connected to redis token store")
	} else {
		log.Println("⚠️ No REDIS_URL set, token revocation and login lockout disabled")
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, store)

	// Start server
	port := config.GetEnv("PORT", "8080")
	log.Printf("🚀 IdeaHub API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
