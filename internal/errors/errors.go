package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEquipmentNotFound is returned when an equipment record is not found.
	ErrEquipmentNotFound = errors.New("equipment not found")
	// ErrInsufficientStock is returned when requested quantity exceeds stock.
	ErrInsufficientStock = errors.New("not enough stock")
	// ErrInvalidQuantity is returned when a quantity is missing or not positive.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrCartLineNotFound is returned when a cart line is absent or owned by another user.
	ErrCartLineNotFound = errors.New("cart item not found")
	// ErrEmptyCart is returned when placing an order with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidScore is returned when a rating score is outside 1..5.
	ErrInvalidScore = errors.New("score must be between 1 and 5")
	// ErrAlreadyRated is returned when the user has already rated the equipment.
	ErrAlreadyRated = errors.New("rating already submitted")
	// ErrRatingNotFound is returned when no ratings exist for an equipment.
	ErrRatingNotFound = errors.New("no ratings found")
	// ErrNoFieldsToUpdate is returned when a partial update carries no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrEquipmentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EQUIPMENT_NOT_FOUND")
	case ErrInsufficientStock:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_STOCK")
	case ErrInvalidQuantity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case ErrCartLineNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_LINE_NOT_FOUND")
	case ErrEmptyCart:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrInvalidScore:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SCORE")
	case ErrAlreadyRated:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_RATED")
	case ErrRatingNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RATING_NOT_FOUND")
	case ErrNoFieldsToUpdate:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FIELDS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
