package repository

import (
	"context"
	"strings"
	"sync"

	"valefood-be/internal/entities"
)

// The memory repositories back the services without a running DynamoDB.
// They guard their maps with a mutex so they are safe under concurrent
// requests, and mirror the Dynamo implementations' matching semantics.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]entities.User)}
}

func (r *MemoryUserRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]entities.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, user entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type MemoryRestaurantRepository struct {
	mu          sync.RWMutex
	restaurants map[string]entities.Restaurant
}

func NewMemoryRestaurantRepository() *MemoryRestaurantRepository {
	return &MemoryRestaurantRepository{restaurants: make(map[string]entities.Restaurant)}
}

func (r *MemoryRestaurantRepository) GetAll(ctx context.Context) ([]entities.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	restaurants := make([]entities.Restaurant, 0, len(r.restaurants))
	for _, restaurant := range r.restaurants {
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

func (r *MemoryRestaurantRepository) GetByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if restaurant, ok := r.restaurants[id]; ok {
		return &restaurant, nil
	}
	return nil, nil
}

func (r *MemoryRestaurantRepository) Save(ctx context.Context, restaurant entities.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *MemoryRestaurantRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.restaurants, id)
	return nil
}

type MemoryPromoRepository struct {
	mu     sync.RWMutex
	promos map[string]entities.Promo
}

func NewMemoryPromoRepository() *MemoryPromoRepository {
	return &MemoryPromoRepository{promos: make(map[string]entities.Promo)}
}

func (r *MemoryPromoRepository) GetAll(ctx context.Context) ([]entities.Promo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	promos := make([]entities.Promo, 0, len(r.promos))
	for _, promo := range r.promos {
		promos = append(promos, promo)
	}
	return promos, nil
}

func (r *MemoryPromoRepository) GetByID(ctx context.Context, id string) (*entities.Promo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if promo, ok := r.promos[id]; ok {
		return &promo, nil
	}
	return nil, nil
}

func (r *MemoryPromoRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]entities.Promo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var promos []entities.Promo
	for _, promo := range r.promos {
		if promo.RestaurantID == restaurantID {
			promos = append(promos, promo)
		}
	}
	return promos, nil
}

func (r *MemoryPromoRepository) GetByCategory(ctx context.Context, category string) ([]entities.Promo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var promos []entities.Promo
	for _, promo := range r.promos {
		if strings.EqualFold(promo.Category, category) {
			promos = append(promos, promo)
		}
	}
	return promos, nil
}

func (r *MemoryPromoRepository) GetByCategories(ctx context.Context, categories []string) ([]entities.Promo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var promos []entities.Promo
	for _, promo := range r.promos {
		for _, category := range categories {
			if strings.EqualFold(promo.Category, category) {
				promos = append(promos, promo)
				break
			}
		}
	}
	return promos, nil
}

func (r *MemoryPromoRepository) Save(ctx context.Context, promo entities.Promo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.promos[promo.ID] = promo
	return nil
}

func (r *MemoryPromoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.promos, id)
	return nil
}
