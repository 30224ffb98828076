package models

import "time"

// AuthRequest represents the request body for authentication
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string    `json:"token"` // JWT token
	ExpiresAt time.Time `json:"expiresAt"`
}
