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
	var promoRepo repository.PromoRepository
	if cfg.StorageBackend == config.StorageMemory {
		log.Println("Using in-memory storage backend")
		userRepo = repository.NewMemoryUserRepository()
		promoRepo = repository.NewMemoryPromoRepository()
	} else {
		client, err := store.NewDynamoClient(ctx, cfg.AWSRegion, cfg.AWSProfile)
		if err != nil {
			log.Fatalf("Failed to create DynamoDB client: %v", err)
		}
		userRepo = repository.NewDynamoUserRepository(client, cfg.UsersTable)
		promoRepo = repository.NewDynamoPromoRepository(client, cfg.PromosTable)
	}

	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTL)*time.Hour)
	userService := service.NewUserService(userRepo, promoRepo)
	userController := controllers.NewUserController(userService)

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "usersvc"})
	})

	users := router.Group("/valefood/users")
	users.Use(rateLimiter.Limit())
	{
		// Registration stays open; everything else requires a token
		users.POST("", userController.Create)

		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("", userController.List)
			protected.GET("/:id", userController.Get)
			protected.PUT("/:id", userController.Update)
			protected.DELETE("/:id", userController.Delete)
			protected.GET("/promos/:userId", userController.GetPromosByUser)
		}
	}

	log.Printf("User service starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
