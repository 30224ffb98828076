package service

import (
	"context"
	"log"

	"valefood-be/internal/apierr"
	"valefood-be/internal/entities"
	"valefood-be/internal/models"
	"valefood-be/internal/repository"

	"github.com/google/uuid"
)

// RestaurantService defines the business operations over restaurants
type RestaurantService interface {
	List(ctx context.Context) ([]models.RestaurantResponse, error)
	Get(ctx context.Context, id string) (*models.RestaurantResponse, error)
	Create(ctx context.Context, req *models.RestaurantRequest) (*models.RestaurantResponse, error)
	Update(ctx context.Context, req *models.RestaurantRequest, id string) (*models.RestaurantResponse, error)
	Delete(ctx context.Context, id string) error
	GetPromosByRestaurant(ctx context.Context, restaurantID string) ([]models.PromoResponse, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	promoRepo      repository.PromoRepository
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	promoRepo repository.PromoRepository,
) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		promoRepo:      promoRepo,
	}
}

// List returns all restaurants mapped to their response shape
func (s *restaurantService) List(ctx context.Context) ([]models.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Failed to read all restaurants from DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	responses := make([]models.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		responses = append(responses, *buildRestaurantResponse(&restaurants[i]))
	}
	return responses, nil
}

// Get returns the restaurant with the given id
func (s *restaurantService) Get(ctx context.Context, id string) (*models.RestaurantResponse, error) {
	restaurant, err := s.retrieveRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		log.Printf("Restaurant was not found. Id: %s", id)
		return nil, apierr.New(apierr.CodeRestaurantNotFound)
	}
	return buildRestaurantResponse(restaurant), nil
}

// Create validates the owning user and persists a new restaurant under a
// fresh id.
func (s *restaurantService) Create(ctx context.Context, req *models.RestaurantRequest) (*models.RestaurantResponse, error) {
	if err := s.validateOwnership(ctx, req.UserID); err != nil {
		return nil, err
	}

	restaurant := buildRestaurant(req, uuid.NewString())
	if err := s.restaurantRepo.Save(ctx, *restaurant); err != nil {
		log.Printf("Failed to save restaurant to DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	log.Printf("Restaurant was successfully created. Id: %s", restaurant.ID)
	return buildRestaurantResponse(restaurant), nil
}

// Update replaces the record at id in full after re-validating ownership
func (s *restaurantService) Update(ctx context.Context, req *models.RestaurantRequest, id string) (*models.RestaurantResponse, error) {
	existing, err := s.retrieveRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		log.Printf("Restaurant was not found. Id: %s", id)
		return nil, apierr.New(apierr.CodeRestaurantNotFound)
	}

	if err := s.validateOwnership(ctx, req.UserID); err != nil {
		return nil, err
	}

	restaurant := buildRestaurant(req, id)
	if err := s.restaurantRepo.Save(ctx, *restaurant); err != nil {
		log.Printf("Failed to save restaurant to DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	log.Printf("Restaurant was successfully updated. Id: %s", id)
	return buildRestaurantResponse(restaurant), nil
}

// Delete removes the restaurant at id. Deleting an unknown id is a no-op.
func (s *restaurantService) Delete(ctx context.Context, id string) error {
	restaurant, err := s.retrieveRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if restaurant == nil {
		log.Printf("The provided restaurant id was not found. Id: %s", id)
		return nil
	}

	if err := s.restaurantRepo.Delete(ctx, id); err != nil {
		log.Printf("Failed to delete restaurant from DB: %v", err)
		return apierr.New(apierr.CodeInternalDBError)
	}
	log.Printf("Restaurant was successfully deleted. Id: %s", id)
	return nil
}

// GetPromosByRestaurant returns every promo referencing the restaurant id.
// An empty list is a valid result here, unlike the promo service's filtered
// lookups.
func (s *restaurantService) GetPromosByRestaurant(ctx context.Context, restaurantID string) ([]models.PromoResponse, error) {
	promos, err := s.promoRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		log.Printf("Failed to read promos from DB by restaurant id %s: %v", restaurantID, err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	return buildPromoResponses(promos), nil
}

func (s *restaurantService) retrieveRestaurant(ctx context.Context, id string) (*entities.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Failed to read restaurant from DB by id %s: %v", id, err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	return restaurant, nil
}

// validateOwnership enforces that the owning user exists and is of type
// RESTAURANT.
func (s *restaurantService) validateOwnership(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("Failed to read user from DB by id %s: %v", userID, err)
		return apierr.New(apierr.CodeInternalDBError)
	}
	if user == nil {
		log.Printf("User was not found. Id: %s", userID)
		return apierr.New(apierr.CodeUserNotFound)
	}
	if user.Type != entities.UserTypeRestaurant {
		log.Printf("User provided is not valid for this operation. User Id: %s", userID)
		return apierr.New(apierr.CodeInvalidUserType)
	}
	return nil
}

// buildRestaurant assembles the persisted record; every product receives a
// fresh id, on update as well as create.
func buildRestaurant(req *models.RestaurantRequest, id string) *entities.Restaurant {
	products := make([]entities.Product, 0, len(req.Products))
	for _, product := range req.Products {
		products = append(products, entities.Product{
			ID:          uuid.NewString(),
			Name:        product.Name,
			Description: product.Description,
			Category:    product.Category,
			Price:       *product.Price,
		})
	}

	return &entities.Restaurant{
		ID:         id,
		Name:       req.Name,
		Address:    req.Address,
		UserID:     req.UserID,
		Categories: normalize(req.Categories),
		Products:   products,
	}
}
