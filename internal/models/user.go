package models

// UserRequest represents the request body for creating or updating a user
type UserRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Type       string   `json:"type" binding:"required,oneof=REGULAR RESTAURANT"`
	Categories []string `json:"categories"`
}

// UserResponse is the outward representation of a user; it never carries
// the password.
type UserResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}
