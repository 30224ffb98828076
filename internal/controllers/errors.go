package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"valefood-be/internal/apierr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON binds the request body into dest. On failure it writes the 400
// response itself — field validation failures become named (code, message)
// pairs, one per offending field — and returns false.
func bindJSON(c *gin.Context, dest interface{}) bool {
	err := c.ShouldBindJSON(dest)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]apierr.AppError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, fieldError(fe))
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
	return false
}

func fieldError(fe validator.FieldError) apierr.AppError {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return apierr.AppError{
			Code:    field + ".empty",
			Message: fmt.Sprintf("%s is required!", fe.Field()),
		}
	case "email":
		return apierr.AppError{
			Code:    field + ".invalid",
			Message: fmt.Sprintf("%s must be a valid email address!", fe.Field()),
		}
	default:
		return apierr.AppError{
			Code:    field + "." + fe.Tag(),
			Message: fmt.Sprintf("%s failed validation on the '%s' rule", fe.Field(), fe.Tag()),
		}
	}
}

// respondError translates a service error into the JSON error body. Anything
// that is not an apierr.Error is reported as a bare 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"errors": apiErr.Errors})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
