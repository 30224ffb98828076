package service

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"valefood-be/internal/apierr"
	"valefood-be/internal/jwt"
	"valefood-be/internal/models"
	"valefood-be/internal/repository"
)

// AuthService defines the authentication operation
type AuthService interface {
	Authenticate(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Authenticate verifies the credentials and issues a token carrying the
// user's id and type. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *authService) Authenticate(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Failed to read user from DB by email: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	if user == nil {
		log.Printf("Authentication failed: unknown email.")
		return nil, apierr.New(apierr.CodeInvalidUserCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Printf("Authentication failed: wrong password. User Id: %s", user.ID)
		return nil, apierr.New(apierr.CodeInvalidUserCredentials)
	}

	token, expiresAt, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Type))
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		return nil, err
	}

	log.Printf("User was successfully authenticated. Id: %s", user.ID)
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
