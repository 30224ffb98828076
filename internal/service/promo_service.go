package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"valefood-be/internal/apierr"
	"valefood-be/internal/cache"
	"valefood-be/internal/entities"
	"valefood-be/internal/models"
	"valefood-be/internal/repository"

	"github.com/google/uuid"
)

const promoCacheTTL = 1 * time.Hour

// PromoService defines the business operations over promos
type PromoService interface {
	List(ctx context.Context) ([]models.PromoResponse, error)
	Get(ctx context.Context, id string) (*models.PromoResponse, error)
	GetByCategory(ctx context.Context, category string) ([]models.PromoResponse, error)
	GetByRestaurant(ctx context.Context, restaurantID string) ([]models.PromoResponse, error)
	Create(ctx context.Context, req *models.PromoRequest) (*models.PromoResponse, error)
	Update(ctx context.Context, req *models.PromoRequest, id string) (*models.PromoResponse, error)
	Delete(ctx context.Context, id string) error
}

type promoService struct {
	promoRepo      repository.PromoRepository
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	cache          cache.Cache
}

// NewPromoService creates a new promo service. The cache is optional; pass
// nil to read straight from the store.
func NewPromoService(
	promoRepo repository.PromoRepository,
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	cacheClient cache.Cache,
) PromoService {
	return &promoService{
		promoRepo:      promoRepo,
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		cache:          cacheClient,
	}
}

// List returns all promos mapped to their response shape
func (s *promoService) List(ctx context.Context) ([]models.PromoResponse, error) {
	promos, err := s.promoRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Failed to read all promos from DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	return buildPromoResponses(promos), nil
}

// Get returns the promo with the given id, consulting the cache first
func (s *promoService) Get(ctx context.Context, id string) (*models.PromoResponse, error) {
	if s.cache != nil {
		var cached entities.Promo
		if err := s.cache.GetJSON(ctx, promoKey(id), &cached); err == nil {
			return buildPromoResponse(&cached), nil
		}
	}

	promo, err := s.retrievePromo(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		log.Printf("Promo was not found. Id: %s", id)
		return nil, apierr.New(apierr.CodePromoNotFound)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, promoKey(id), promo, promoCacheTTL); err != nil {
			log.Printf("Warning: failed to cache promo %s: %v", id, err)
		}
	}
	return buildPromoResponse(promo), nil
}

// GetByCategory returns promos matching the category case-insensitively.
// No match is signaled as RESTAURANT_NOT_FOUND rather than an empty list.
func (s *promoService) GetByCategory(ctx context.Context, category string) ([]models.PromoResponse, error) {
	promos, err := s.promoRepo.GetByCategory(ctx, category)
	if err != nil {
		log.Printf("Failed to read promos from DB by category: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	if len(promos) == 0 {
		log.Printf("No promos were found. Category: %s", category)
		return nil, apierr.New(apierr.CodeRestaurantNotFound)
	}
	return buildPromoResponses(promos), nil
}

// GetByRestaurant returns promos referencing the restaurant id exactly.
// No match is signaled as RESTAURANT_NOT_FOUND rather than an empty list.
func (s *promoService) GetByRestaurant(ctx context.Context, restaurantID string) ([]models.PromoResponse, error) {
	if s.cache != nil {
		var cached []entities.Promo
		if err := s.cache.GetJSON(ctx, restaurantPromosKey(restaurantID), &cached); err == nil && len(cached) > 0 {
			return buildPromoResponses(cached), nil
		}
	}

	promos, err := s.promoRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		log.Printf("Failed to read promos from DB by restaurant id %s: %v", restaurantID, err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	if len(promos) == 0 {
		log.Printf("Promo was not found. RestaurantId: %s", restaurantID)
		return nil, apierr.New(apierr.CodeRestaurantNotFound)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, restaurantPromosKey(restaurantID), promos, promoCacheTTL); err != nil {
			log.Printf("Warning: failed to cache promos for restaurant %s: %v", restaurantID, err)
		}
	}
	return buildPromoResponses(promos), nil
}

// Create validates the promo's ownership chain and persists it under a
// fresh id.
func (s *promoService) Create(ctx context.Context, req *models.PromoRequest) (*models.PromoResponse, error) {
	if err := s.validateOwnership(ctx, req.RestaurantID); err != nil {
		return nil, err
	}

	promo := buildPromo(req, uuid.NewString())
	if err := s.promoRepo.Save(ctx, *promo); err != nil {
		log.Printf("Failed to save promo to DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	s.invalidate(ctx, promo.ID, promo.RestaurantID)
	log.Printf("Promo was successfully created. Id: %s", promo.ID)
	return buildPromoResponse(promo), nil
}

// Update replaces the record at id in full after re-validating ownership
func (s *promoService) Update(ctx context.Context, req *models.PromoRequest, id string) (*models.PromoResponse, error) {
	existing, err := s.retrievePromo(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		log.Printf("Promo was not found. Id: %s", id)
		return nil, apierr.New(apierr.CodePromoNotFound)
	}

	if err := s.validateOwnership(ctx, req.RestaurantID); err != nil {
		return nil, err
	}

	promo := buildPromo(req, id)
	if err := s.promoRepo.Save(ctx, *promo); err != nil {
		log.Printf("Failed to save promo to DB: %v", err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}

	// The promo may have moved between restaurants, drop both list entries
	s.invalidate(ctx, id, existing.RestaurantID, promo.RestaurantID)
	log.Printf("Promo was successfully updated. Id: %s", id)
	return buildPromoResponse(promo), nil
}

// Delete removes the promo at id. Deleting an unknown id is a no-op.
func (s *promoService) Delete(ctx context.Context, id string) error {
	promo, err := s.retrievePromo(ctx, id)
	if err != nil {
		return err
	}
	if promo == nil {
		log.Printf("The provided promo id was not found. Id: %s", id)
		return nil
	}

	if err := s.promoRepo.Delete(ctx, id); err != nil {
		log.Printf("Failed to delete promo from DB: %v", err)
		return apierr.New(apierr.CodeInternalDBError)
	}

	s.invalidate(ctx, id, promo.RestaurantID)
	log.Printf("Promo was successfully deleted. Id: %s", id)
	return nil
}

func (s *promoService) retrievePromo(ctx context.Context, id string) (*entities.Promo, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Failed to read promo from DB by id %s: %v", id, err)
		return nil, apierr.New(apierr.CodeInternalDBError)
	}
	return promo, nil
}

// validateOwnership enforces that the referenced restaurant exists and that
// its owning user exists and is of type RESTAURANT.
func (s *promoService) validateOwnership(ctx context.Context, restaurantID string) error {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		log.Printf("Failed to read restaurant from DB by id %s: %v", restaurantID, err)
		return apierr.New(apierr.CodeInternalDBError)
	}
	if restaurant == nil {
		log.Printf("Restaurant was not found. Id: %s", restaurantID)
		return apierr.New(apierr.CodeRestaurantNotFound)
	}

	user, err := s.userRepo.GetByID(ctx, restaurant.UserID)
	if err != nil {
		log.Printf("Failed to read user from DB by id %s: %v", restaurant.UserID, err)
		return apierr.New(apierr.CodeInternalDBError)
	}
	if user == nil {
		log.Printf("User was not found. Id: %s", restaurant.UserID)
		return apierr.New(apierr.CodeUserNotFound)
	}
	if user.Type != entities.UserTypeRestaurant {
		log.Printf("User provided is not valid for this operation. User Id: %s", restaurant.UserID)
		return apierr.New(apierr.CodeInvalidUserType)
	}
	return nil
}

// invalidate drops the cache entries a write may have made stale. Cache
// failures are logged, never surfaced.
func (s *promoService) invalidate(ctx context.Context, promoID string, restaurantIDs ...string) {
	if s.cache == nil {
		return
	}
	keys := []string{promoKey(promoID)}
	for _, rid := range restaurantIDs {
		keys = append(keys, restaurantPromosKey(rid))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Printf("Warning: failed to invalidate promo cache: %v", err)
	}
}

func buildPromo(req *models.PromoRequest, id string) *entities.Promo {
	return &entities.Promo{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		RestaurantID: req.RestaurantID,
		Category:     req.Category,
		Price:        *req.Price,
	}
}

func promoKey(id string) string {
	return fmt.Sprintf("promo:id:%s", id)
}

func restaurantPromosKey(restaurantID string) string {
	return fmt.Sprintf("promo:restaurant:%s", restaurantID)
}
