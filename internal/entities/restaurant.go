package entities

// Restaurant represents a restaurant document in the restaurants collection.
// UserID references the owning User, which must be of type RESTAURANT at
// write time; the store itself enforces no foreign keys.
type Restaurant struct {
	ID         string    `json:"id" dynamodbav:"id"`
	Name       string    `json:"name" dynamodbav:"name"`
	Address    string    `json:"address" dynamodbav:"address"`
	UserID     string    `json:"userId" dynamodbav:"userId"`
	Categories []string  `json:"categories" dynamodbav:"categories"`
	Products   []Product `json:"products" dynamodbav:"products"`
}

// Product is owned exclusively by its Restaurant and has no independent
// lifecycle; product ids are regenerated whenever the restaurant is rebuilt.
type Product struct {
	ID          string  `json:"id" dynamodbav:"id"`
	Name        string  `json:"name" dynamodbav:"name"`
	Description string  `json:"description" dynamodbav:"description"`
	Category    string  `json:"category" dynamodbav:"category"`
	Price       float64 `json:"price" dynamodbav:"price"`
}
