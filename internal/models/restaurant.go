package models

// RestaurantRequest represents the request body for creating or updating
// a restaurant, including its full product list.
type RestaurantRequest struct {
	Name       string           `json:"name" binding:"required"`
	Address    string           `json:"address" binding:"required"`
	UserID     string           `json:"userId" binding:"required"`
	Categories []string         `json:"categories"`
	Products   []ProductRequest `json:"products" binding:"dive"`
}

// ProductRequest represents a single product inside a restaurant request.
// Price is a pointer so an explicit 0 is distinguishable from an absent
// field.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

// RestaurantResponse is the outward representation of a restaurant
type RestaurantResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	UserID     string            `json:"userId"`
	Categories []string          `json:"categories"`
	Products   []ProductResponse `json:"products"`
}

// ProductResponse is the outward representation of a product
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}
