package main

import (
	"context"
	"log"
	"time"

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

	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTL)*time.Hour)
	restaurantService := service.NewRestaurantService(restaurantRepo, userRepo, promoRepo)
	restaurantController := controllers.NewRestaurantController(restaurantService)

	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "restaurantsvc"})
	})

	restaurants := router.Group("/valefood/restaurants")
	restaurants.Use(rateLimiter.Limit())
	{
		restaurants.GET("", restaurantController.List)
		restaurants.GET("/:id", restaurantController.Get)

		protected := restaurants.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/promos/:restaurantId", restaurantController.GetPromosByRestaurant)

			// Only restaurant owners may mutate restaurants
			owners := protected.Group("")
			owners.Use(middleware.RequireRole(string(entities.UserTypeRestaurant)))
			{
				owners.POST("", restaurantController.Create)
				owners.PUT("/:id", restaurantController.Update)
				owners.DELETE("/:id", restaurantController.Delete)
			}
		}
	}

	log.Printf("Restaurant service starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
