package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"valefood-be/internal/models"
	"valefood-be/internal/repository"
	"valefood-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewMemoryUserRepository()
	promoRepo := repository.NewMemoryPromoRepository()
	uc := NewUserController(service.NewUserService(userRepo, promoRepo))

	r := gin.New()
	users := r.Group("/valefood/users")
	{
		users.GET("", uc.List)
		users.GET("/:id", uc.Get)
		users.POST("", uc.Create)
		users.PUT("/:id", uc.Update)
		users.DELETE("/:id", uc.Delete)
		users.GET("/promos/:userId", uc.GetPromosByUser)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUserCreateReturns201WithoutPassword(t *testing.T) {
	r := newUserRouter(t)

	w := doJSON(t, r, http.MethodPost, "/valefood/users", models.UserRequest{
		Name:     "Ana",
		Email:    "ana@valefood.com",
		Password: "secret123",
		Type:     "REGULAR",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "ana@valefood.com", resp["email"])
	assert.NotContains(t, resp, "password")
}

func TestUserCreateValidationErrors(t *testing.T) {
	r := newUserRouter(t)

	w := doJSON(t, r, http.MethodPost, "/valefood/users", map[string]string{
		"name":     "",
		"email":    "not-an-email",
		"password": "secret123",
		"type":     "REGULAR",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	codes := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		codes = append(codes, e.Code)
	}
	assert.Contains(t, codes, "name.empty")
	assert.Contains(t, codes, "email.invalid")
}

func TestUserGetNotFoundBody(t *testing.T) {
	r := newUserRouter(t)

	w := doJSON(t, r, http.MethodGet, "/valefood/users/nope", nil)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "USER_NOT_FOUND", body.Errors[0].Code)
	assert.Equal(t, "User was not found", body.Errors[0].Message)
}

func TestUserDuplicateEmailConflict(t *testing.T) {
	r := newUserRouter(t)

	req := models.UserRequest{
		Name:     "Ana",
		Email:    "ana@valefood.com",
		Password: "secret123",
		Type:     "REGULAR",
	}
	first := doJSON(t, r, http.MethodPost, "/valefood/users", req)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, r, http.MethodPost, "/valefood/users", req)
	require.Equal(t, http.StatusConflict, second.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "CONFLICTED_USER_EMAIL", body.Errors[0].Code)
}

func TestUserDeleteReturns204(t *testing.T) {
	r := newUserRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/valefood/users/whatever", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUserListReturnsCreatedUsers(t *testing.T) {
	r := newUserRouter(t)

	created := doJSON(t, r, http.MethodPost, "/valefood/users", models.UserRequest{
		Name:     "Ana",
		Email:    "ana@valefood.com",
		Password: "secret123",
		Type:     "REGULAR",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(t, r, http.MethodGet, "/valefood/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0]["name"])
}
