package entities

// Promo represents a promo document in the promos collection. RestaurantID
// must reference an existing Restaurant whose owner is of type RESTAURANT.
type Promo struct {
	ID           string  `json:"id" dynamodbav:"id"`
	Title        string  `json:"title" dynamodbav:"title"`
	Description  string  `json:"description" dynamodbav:"description"`
	RestaurantID string  `json:"restaurantId" dynamodbav:"restaurantId"`
	Category     string  `json:"category" dynamodbav:"category"`
	Price        float64 `json:"price" dynamodbav:"price"`
}
