package controllers

import (
	"net/http"

	"valefood-be/internal/models"
	"valefood-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Authenticate handles POST /valefood/auth
func (ac *AuthController) Authenticate(c *gin.Context) {
	var req models.AuthRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := ac.authService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
