package apierr

import (
	"fmt"
	"net/http"
	"strings"
)

// Error code for every business failure the services can signal
const (
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeRestaurantNotFound     = "RESTAURANT_NOT_FOUND"
	CodePromoNotFound          = "PROMO_NOT_FOUND"
	CodeInvalidUserType        = "INVALID_USER_TYPE"
	CodeConflictedUserEmail    = "CONFLICTED_USER_EMAIL"
	CodeInvalidUserCredentials = "INVALID_USER_CREDENTIALS"
	CodeInternalDBError        = "INTERNAL_DB_COMMUNICATION_ERROR"
)

// AppError is a single (code, message) pair in an error body
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is the business error type shared by all services. It carries the
// HTTP status the controller should answer with and the list of app errors
// to render as the JSON body.
type Error struct {
	Status int        `json:"-"`
	Errors []AppError `json:"errors"`
}

func (e *Error) Error() string {
	codes := make([]string, 0, len(e.Errors))
	for _, ae := range e.Errors {
		codes = append(codes, ae.Code)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, strings.Join(codes, ", "))
}

// Is reports whether the error carries the given code.
func (e *Error) Is(code string) bool {
	for _, ae := range e.Errors {
		if ae.Code == code {
			return true
		}
	}
	return false
}

var codeStatus = map[string]int{
	CodeUserNotFound:           http.StatusNotFound,
	CodeRestaurantNotFound:     http.StatusNotFound,
	CodePromoNotFound:          http.StatusNotFound,
	CodeInvalidUserType:        http.StatusConflict,
	CodeConflictedUserEmail:    http.StatusConflict,
	CodeInvalidUserCredentials: http.StatusUnauthorized,
	CodeInternalDBError:        http.StatusBadGateway,
}

var codeMessage = map[string]string{
	CodeUserNotFound:           "User was not found",
	CodeRestaurantNotFound:     "Restaurant was not found",
	CodePromoNotFound:          "Promo was not found",
	CodeInvalidUserType:        "User provided is not valid for this operation",
	CodeConflictedUserEmail:    "Provided email is already in use",
	CodeInvalidUserCredentials: "Invalid email or password",
	CodeInternalDBError:        "Failed to communicate with the database",
}

// New builds an Error for a known business code.
func New(code string) *Error {
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return &Error{
		Status: status,
		Errors: []AppError{{Code: code, Message: codeMessage[code]}},
	}
}

// NewValidation builds a 400 Error from named field errors.
func NewValidation(fieldErrors []AppError) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Errors: fieldErrors,
	}
}
