package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"valefood-be/internal/entities"
	"valefood-be/internal/models"
	"valefood-be/internal/repository"
	"valefood-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurantRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewMemoryUserRepository()
	restaurantRepo := repository.NewMemoryRestaurantRepository()
	promoRepo := repository.NewMemoryPromoRepository()

	require.NoError(t, userRepo.Save(context.Background(), entities.User{
		ID:    "owner-1",
		Name:  "Vale",
		Email: "vale@valefood.com",
		Type:  entities.UserTypeRestaurant,
	}))

	rc := NewRestaurantController(service.NewRestaurantService(restaurantRepo, userRepo, promoRepo))

	r := gin.New()
	restaurants := r.Group("/valefood/restaurants")
	{
		restaurants.GET("", rc.List)
		restaurants.GET("/:id", rc.Get)
		restaurants.POST("", rc.Create)
		restaurants.PUT("/:id", rc.Update)
		restaurants.DELETE("/:id", rc.Delete)
		restaurants.GET("/promos/:restaurantId", rc.GetPromosByRestaurant)
	}
	return r
}

func TestRestaurantCreateZeroPriceProductAccepted(t *testing.T) {
	r := newRestaurantRouter(t)

	w := doJSON(t, r, http.MethodPost, "/valefood/restaurants", models.RestaurantRequest{
		Name:       "Vale Burgers",
		Address:    "Rua das Flores 1",
		UserID:     "owner-1",
		Categories: []string{"burger"},
		Products: []models.ProductRequest{
			{Name: "Water", Description: "On the house", Category: "drinks", Price: floatPtr(0)},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.RestaurantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, 0.0, resp.Products[0].Price)
}

func TestRestaurantCreateUnknownOwner(t *testing.T) {
	r := newRestaurantRouter(t)

	w := doJSON(t, r, http.MethodPost, "/valefood/restaurants", models.RestaurantRequest{
		Name:    "Vale Burgers",
		Address: "Rua das Flores 1",
		UserID:  "missing-owner",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "USER_NOT_FOUND", body.Errors[0].Code)
}
