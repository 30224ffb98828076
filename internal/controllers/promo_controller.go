package controllers

import (
	"net/http"

	"valefood-be/internal/models"
	"valefood-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type PromoController struct {
	promoService service.PromoService
	frontendURL  string
}

func NewPromoController(promoService service.PromoService, frontendURL string) *PromoController {
	return &PromoController{
		promoService: promoService,
		frontendURL:  frontendURL,
	}
}

// List handles GET /valefood/promos
func (pc *PromoController) List(c *gin.Context) {
	promos, err := pc.promoService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}

// Get handles GET /valefood/promos/:id
func (pc *PromoController) Get(c *gin.Context) {
	promo, err := pc.promoService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promo)
}

// GetByCategory handles GET /valefood/promos/category/:category
func (pc *PromoController) GetByCategory(c *gin.Context) {
	promos, err := pc.promoService.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}

// GetByRestaurant handles GET /valefood/promos/restaurant/:restaurantId
func (pc *PromoController) GetByRestaurant(c *gin.Context) {
	promos, err := pc.promoService.GetByRestaurant(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promos)
}

// Create handles POST /valefood/promos
func (pc *PromoController) Create(c *gin.Context) {
	var req models.PromoRequest
	if !bindJSON(c, &req) {
		return
	}

	promo, err := pc.promoService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, promo)
}

// Update handles PUT /valefood/promos/:id
func (pc *PromoController) Update(c *gin.Context) {
	var req models.PromoRequest
	if !bindJSON(c, &req) {
		return
	}

	promo, err := pc.promoService.Update(c.Request.Context(), &req, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, promo)
}

// Delete handles DELETE /valefood/promos/:id
func (pc *PromoController) Delete(c *gin.Context) {
	if err := pc.promoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QRCode handles GET /valefood/promos/:id/qrcode - renders a PNG QR code
// linking to the promo page on the frontend.
func (pc *PromoController) QRCode(c *gin.Context) {
	id := c.Param("id")

	// Resolve the promo first so unknown ids still answer NOT_FOUND
	promo, err := pc.promoService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	promoURL := pc.frontendURL + "/promos/" + promo.ID
	code, err := qrcode.New(promoURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := code.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
