package utils

import (
	"errors"
	"net/http"
)

// APIError carries an HTTP status alongside a user-facing message. Services
// return these for every expected failure; anything else surfaces as a 500.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewValidationError signals malformed or out-of-range input (400)
func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewNotFoundError signals a missing entity or parent (404)
func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// NewForbiddenError signals an authorization failure (403)
func NewForbiddenError(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}

// NewConflictError signals a uniqueness or state conflict (409)
func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message}
}

// StatusOf extracts the HTTP status for an error, defaulting to 500
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the user-facing message for an error. Unexpected errors
// are masked so database details never leak into responses.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Internal server error"
}
