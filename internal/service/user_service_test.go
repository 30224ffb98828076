package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"valefood-be/internal/apierr"
	"valefood-be/internal/entities"
	"valefood-be/internal/models"
	"valefood-be/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func requireAPIError(t *testing.T, err error, code string) *apierr.Error {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apierr.Error)
	require.True(t, ok, "expected *apierr.Error, got %T", err)
	require.True(t, apiErr.Is(code), "expected code %s, got %v", code, apiErr.Errors)
	return apiErr
}

func newUserFixture(t *testing.T) (UserService, *repository.MemoryUserRepository, *repository.MemoryPromoRepository) {
	t.Helper()
	userRepo := repository.NewMemoryUserRepository()
	promoRepo := repository.NewMemoryPromoRepository()
	return NewUserService(userRepo, promoRepo), userRepo, promoRepo
}

func TestUserCreateAndGet(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserRequest{
		Name:       "Ana",
		Email:      "a@x.com",
		Password:   "secret123",
		Type:       "REGULAR",
		Categories: []string{"pizza"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, "a@x.com", created.Email)
	assert.Equal(t, "REGULAR", created.Type)
	assert.Equal(t, []string{"pizza"}, created.Categories)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUserCreateStoresHashedPassword(t *testing.T) {
	svc, userRepo, _ := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserRequest{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "secret123",
		Type:     "REGULAR",
	})
	require.NoError(t, err)

	stored, err := userRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestUserCreateConflictedEmail(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.UserRequest{
		Name: "Ana", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &models.UserRequest{
		Name: "Bea", Email: "a@x.com", Password: "secret456", Type: "REGULAR",
	})
	requireAPIError(t, err, apierr.CodeConflictedUserEmail)
}

func TestUserEmailUniquenessIsCaseSensitive(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.UserRequest{
		Name: "Ana", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	})
	require.NoError(t, err)

	// Same address in a different case is accepted by the current contract
	_, err = svc.Create(ctx, &models.UserRequest{
		Name: "Bea", Email: "A@x.com", Password: "secret456", Type: "REGULAR",
	})
	require.NoError(t, err)
}

func TestUserRestaurantTypeDropsCategories(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserRequest{
		Name:       "Cantina",
		Email:      "owner@x.com",
		Password:   "secret123",
		Type:       "RESTAURANT",
		Categories: []string{"pizza"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, created.Categories)
}

func TestUserGetNotFound(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	_, err := svc.Get(context.Background(), "missing")
	apiErr := requireAPIError(t, err, apierr.CodeUserNotFound)
	assert.Equal(t, 404, apiErr.Status)
}

func TestUserUpdateNotFoundPerformsNoWrite(t *testing.T) {
	svc, userRepo, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, &models.UserRequest{
		Name: "Ana", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	}, "missing")
	requireAPIError(t, err, apierr.CodeUserNotFound)

	all, err := userRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserUpdateSameEmailSkipsUniquenessCheck(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserRequest{
		Name: "Ana", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	})
	require.NoError(t, err)

	// Keeping the email must not trip over the user's own record
	updated, err := svc.Update(ctx, &models.UserRequest{
		Name: "Ana Maria", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUserUpdateChangedEmailConflicts(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.UserRequest{
		Name: "Ana", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	})
	require.NoError(t, err)

	bea, err := svc.Create(ctx, &models.UserRequest{
		Name: "Bea", Email: "b@x.com", Password: "secret123", Type: "REGULAR",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, &models.UserRequest{
		Name: "Bea", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	}, bea.ID)
	requireAPIError(t, err, apierr.CodeConflictedUserEmail)
}

func TestUserDeleteIsIdempotent(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.UserRequest{
		Name: "Ana", Email: "a@x.com", Password: "secret123", Type: "REGULAR",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, "never-existed"))
}

func TestGetPromosByUserMatchesCategoriesCaseInsensitively(t *testing.T) {
	svc, _, promoRepo := newUserFixture(t)
	ctx := context.Background()

	ana, err := svc.Create(ctx, &models.UserRequest{
		Name:       "Ana",
		Email:      "a@x.com",
		Password:   "secret123",
		Type:       "REGULAR",
		Categories: []string{"pizza"},
	})
	require.NoError(t, err)

	require.NoError(t, promoRepo.Save(ctx, entities.Promo{
		ID: "p1", Title: "Family pizza", RestaurantID: "r1", Category: "Pizza", Price: 30,
	}))
	require.NoError(t, promoRepo.Save(ctx, entities.Promo{
		ID: "p2", Title: "Sushi combo", RestaurantID: "r2", Category: "sushi", Price: 50,
	}))

	promos, err := svc.GetPromosByUser(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "p1", promos[0].ID)
}

func TestGetPromosByUserUnknownUser(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	_, err := svc.GetPromosByUser(context.Background(), "missing")
	requireAPIError(t, err, apierr.CodeUserNotFound)
}

func TestGetPromosByUserWithoutCategories(t *testing.T) {
	svc, userRepo, promoRepo := newUserFixture(t)
	ctx := context.Background()

	// A record with a nil list, as an older document might carry
	require.NoError(t, userRepo.Save(ctx, entities.User{
		ID: "u1", Name: "Ana", Email: "a@x.com", Type: entities.UserTypeRegular,
	}))
	require.NoError(t, promoRepo.Save(ctx, entities.Promo{
		ID: "p1", Category: "pizza", RestaurantID: "r1",
	}))

	promos, err := svc.GetPromosByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, promos)
}

func TestUserResponseNormalizesNilCategories(t *testing.T) {
	svc, userRepo, _ := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, userRepo.Save(ctx, entities.User{
		ID: "u1", Name: "Ana", Email: "a@x.com", Type: entities.UserTypeRegular,
	}))

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, got.Categories)
	assert.Empty(t, got.Categories)
}
