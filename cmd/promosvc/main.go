package main

import (
	"context"
	"log"
	"time"

	"valefood-be/internal/cache"
	"valefood-be/internal/config"
	"valefood-be/internal/controllers"
	"valefood-be/internal/entities"
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
	var restaurantRepo repository.RestaurantRepository
	var promoRepo repository.PromoRepository
	if cfg.StorageBackend == config.StorageMemory {
		log.Println("Using in-memory storage backend")
		userRepo = repository.NewMemoryUserRepository()
		restaurantRepo = repository.NewMemoryRestaurantRepository()
		promoRepo = repository.NewMemoryPromoRepository()
	} else {
		client, err := store.NewDynamoClient(ctx, cfg.AWSRegion, cfg.AWSProfile)
		if err != nil {
			log.Fatalf("Failed to create DynamoDB client: %v", err)
		}
		userRepo = repository.NewDynamoUserRepository(client, cfg.UsersTable)
		restaurantRepo = repository.NewDynamoRestaurantRepository(client, cfg.RestaurantsTable)
		promoRepo = repository.NewDynamoPromoRepository(client, cfg.PromosTable)
	}

	// Redis is optional - continue without the cache if it is unreachable
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		var err error
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTL)*time.Hour)
	promoService := service.NewPromoService(promoRepo, restaurantRepo, userRepo, cacheClient)
	promoController := controllers.NewPromoController(promoService, cfg.FrontendURL)

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "promosvc"})
	})

	promos := router.Group("/valefood/promos")
	promos.Use(rateLimiter.Limit())
	{
		promos.GET("", promoController.List)
		promos.GET("/:id", promoController.Get)
		promos.GET("/:id/qrcode", promoController.QRCode)
		promos.GET("/category/:category", promoController.GetByCategory)
		promos.GET("/restaurant/:restaurantId", promoController.GetByRestaurant)

		// Only restaurant owners may mutate promos
		owners := promos.Group("")
		owners.Use(middleware.AuthMiddleware(jwtService), middleware.RequireRole(string(entities.UserTypeRestaurant)))
		{
			owners.POST("", promoController.Create)
			owners.PUT("/:id", promoController.Update)
			owners.DELETE("/:id", promoController.Delete)
		}
	}

	log.Printf("Promo service starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
