package controllers

import (
	"net/http"

	"valefood-be/internal/models"
	"valefood-be/internal/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// List handles GET /valefood/users
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /valefood/users/:id
func (uc *UserController) Get(c *gin.Context) {
	user, err := uc.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles POST /valefood/users
func (uc *UserController) Create(c *gin.Context) {
	var req models.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.userService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /valefood/users/:id
func (uc *UserController) Update(c *gin.Context) {
	var req models.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := uc.userService.Update(c.Request.Context(), &req, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /valefood/users/:id
func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPromosByUser handles GET /valefood/users/promos/:userId - promos
// matching the user's favorite categories
func (uc *UserController) GetPromosByUser(c *gin.Context) {
	promos, err := uc.userService.GetPromosByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}
