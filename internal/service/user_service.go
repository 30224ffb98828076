package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"valefood-be/internal/apierr"
	"valefood-be/internal/entities"
	"valefood-be/internal/models"
	"valefood-be/internal/repository"

	"github.com/google/uuid"
)

// UserService defines the business operations over users
type UserService interface {
	List(ctx context.Context) ([]models.UserResponse, error)
	Get(ctx context.Context, id string) (*models.UserResponse, error)
	Create(ctx context.Context, req *models.UserRequest) (*models.UserResponse, error)
	Update(ctx context.Context, req *models.UserRequest, id string) (*models.UserResponse, error)
	Delete(ctx context.Context, id string) error
	GetPromosByUser(ctx context.Context, userID string) ([]models.PromoResponse, error)
}

type userService struct {
	userRepo  repository.UserRepository
	promoRepo repository.PromoRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, promoRepo repository.PromoRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		promoRepo: promoRepo,
	}
}

// List returns all users mapped to their response shape
func (s *userService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Failed to read all users from DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *buildUserResponse(&users[i]))
	}
	return responses, nil
}

// Get returns the user with the given id
func (s *userService) Get(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.retrieveUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Printf("User was not found. Id: %s", id)
		return nil, apierr.New(apierr.CodeUserNotFound)
	}
	return buildUserResponse(user), nil
}

// Create validates email uniqueness, persists a new user under a fresh id
// and returns its response shape.
func (s *userService) Create(ctx context.Context, req *models.UserRequest) (*models.UserResponse, error) {
	if err := s.validateEmailUniqueness(ctx, req.Email); err != nil {
		return nil, err
	}

	user, err := s.buildUser(req, uuid.NewString())
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, *user); err != nil {
		log.Printf("Failed to save user to DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	log.Printf("User was successfully created. Id: %s", user.ID)
	return buildUserResponse(user), nil
}

// Update replaces the record at id in full. Email uniqueness is re-checked
// only when the email actually changes.
func (s *userService) Update(ctx context.Context, req *models.UserRequest, id string) (*models.UserResponse, error) {
	existing, err := s.retrieveUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		log.Printf("User was not found. Id: %s", id)
		return nil, apierr.New(apierr.CodeUserNotFound)
	}

	if req.Email != "" && req.Email != existing.Email {
		if err := s.validateEmailUniqueness(ctx, req.Email); err != nil {
			return nil, err
		}
	}

	user, err := s.buildUser(req, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, *user); err != nil {
		log.Printf("Failed to save user to DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	log.Printf("User was successfully updated. Id: %s", id)
	return buildUserResponse(user), nil
}

// Delete removes the user at id. Deleting an unknown id is a no-op.
func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.retrieveUser(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		log.Printf("The provided user id was not found. Id: %s", id)
		return nil
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		log.Printf("Failed to delete user from DB: %v", err)
		return apierr.New(apierr.CodeInternalDBError)
	}
	log.Printf("User was successfully deleted. Id: %s", id)
	return nil
}

// GetPromosByUser returns every promo whose category matches one of the
// user's favorite categories, case-insensitively. A user without categories
// gets an empty list.
func (s *userService) GetPromosByUser(ctx context.Context, userID string) ([]models.PromoResponse, error) {
	user, err := s.retrieveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Printf("User was not found. Id: %s", userID)
		return nil, apierr.New(apierr.CodeUserNotFound)
	}

	categories := normalize(user.Categories)
	promos, err := s.promoRepo.GetByCategories(ctx, categories)
	if err != nil {
		log.Printf("Failed to read promos from DB by categories: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	return buildPromoResponses(promos), nil
}

func (s *userService) retrieveUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Failed to read user from DB by id %s: %v", id, err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	return user, nil
}

// validateEmailUniqueness fails when any user already holds the email.
// The comparison is exact and case-sensitive.
func (s *userService) validateEmailUniqueness(ctx context.Context, email string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("Failed to read user from DB by email: %v", err)
		return apierr.New(apierr.CodeInternalDBError)
	}
	if existing != nil {
		log.Printf("Provided email already in use.")
		return apierr.New(apierr.CodeConflictedUserEmail)
	}
	return nil
}

// buildUser assembles the persisted record: the password is stored hashed
// and only REGULAR users keep their favorite categories.
func (s *userService) buildUser(req *models.UserRequest, id string) (*entities.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userType := entities.UserType(req.Type)
	categories := []string{}
	if userType == entities.UserTypeRegular {
		categories = normalize(req.Categories)
	}

	return &entities.User{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Type:       userType,
		Categories: categories,
	}, nil
}
