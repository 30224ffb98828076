package models

// PromoRequest represents the request body for creating or updating a promo.
// Price is a pointer so an explicit 0 (a free promo) is distinguishable from
// an absent field.
type PromoRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	RestaurantID string   `json:"restaurantId" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
}

// PromoResponse is the outward representation of a promo
type PromoResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	RestaurantID string  `json:"restaurantId"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
}
