package main

import (
	"context"
	"log"
	"time"

	"valefood-be/internal/config"
	"valefood-be/internal/controllers"
	"valefood-be/internal/jwt"
	"valefood-be/internal/middleware"
	"valefood-be/internal/repository"
	"valefood-be/internal/service"
	"valefood-be/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var userRepo repository.UserRepository
	if cfg.StorageBackend == config.StorageMemory {
		log.Println("Using in-memory storage backend")
		userRepo = repository.NewMemoryUserRepository()
	} else {
		client, err := store.NewDynamoClient(ctx, cfg.AWSRegion, cfg.AWSProfile)
		if err != nil {
			log.Fatalf("Failed to create DynamoDB client: %v", err)
		}
		userRepo = repository.NewDynamoUserRepository(client, cfg.UsersTable)
	}

	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTL)*time.Hour)
	authService := service.NewAuthService(userRepo, jwtService)
	authController := controllers.NewAuthController(authService)

	// Credential checks get a stricter bucket than the rest of the API
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "authsvc"})
	})

	router.POST("/valefood/auth", authRateLimiter.Limit(), authController.Authenticate)

	log.Printf("Auth service starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
