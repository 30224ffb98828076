package service

import (
	"valefood-be/internal/entities"
	"valefood-be/internal/models"
)

// Response assembly: pure mapping from persisted entities to outward DTOs.
// Nil collections on a source record are normalized to empty slices so a
// response never carries a null list, and the user's password is never
// copied out.

func buildUserResponse(user *entities.User) *models.UserResponse {
	return &models.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Type:       string(user.Type),
		Categories: normalize(user.Categories),
	}
}

func buildRestaurantResponse(restaurant *entities.Restaurant) *models.RestaurantResponse {
	products := make([]models.ProductResponse, 0, len(restaurant.Products))
	for _, product := range restaurant.Products {
		products = append(products, models.ProductResponse{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Category:    product.Category,
			Price:       product.Price,
		})
	}

	return &models.RestaurantResponse{
		ID:         restaurant.ID,
		Name:       restaurant.Name,
		Address:    restaurant.Address,
		UserID:     restaurant.UserID,
		Categories: normalize(restaurant.Categories),
		Products:   products,
	}
}

func buildPromoResponse(promo *entities.Promo) *models.PromoResponse {
	return &models.PromoResponse{
		ID:           promo.ID,
		Title:        promo.Title,
		Description:  promo.Description,
		RestaurantID: promo.RestaurantID,
		Category:     promo.Category,
		Price:        promo.Price,
	}
}

func buildPromoResponses(promos []entities.Promo) []models.PromoResponse {
	responses := make([]models.PromoResponse, 0, len(promos))
	for i := range promos {
		responses = append(responses, *buildPromoResponse(&promos[i]))
	}
	return responses
}

func normalize(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
