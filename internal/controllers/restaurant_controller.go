package controllers

import (
	"net/http"

	"valefood-be/internal/models"
	"valefood-be/internal/service"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	restaurantService service.RestaurantService
}

func NewRestaurantController(restaurantService service.RestaurantService) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

// List handles GET /valefood/restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	restaurants, err := rc.restaurantService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Get handles GET /valefood/restaurants/:id
func (rc *RestaurantController) Get(c *gin.Context) {
	restaurant, err := rc.restaurantService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Create handles POST /valefood/restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var req models.RestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	restaurant, err := rc.restaurantService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// Update handles PUT /valefood/restaurants/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	var req models.RestaurantRequest
	if !bindJSON(c, &req) {
		return
	}

	restaurant, err := rc.restaurantService.Update(c.Request.Context(), &req, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Delete handles DELETE /valefood/restaurants/:id
func (rc *RestaurantController) Delete(c *gin.Context) {
	if err := rc.restaurantService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPromosByRestaurant handles GET /valefood/restaurants/promos/:restaurantId
func (rc *RestaurantController) GetPromosByRestaurant(c *gin.Context) {
	promos, err := rc.restaurantService.GetPromosByRestaurant(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}
