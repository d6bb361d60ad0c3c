package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fundingtrail/internal/repository"
	"fundingtrail/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingEmail),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidCheckoutID),
		errors.Is(err, service.ErrInvalidProgramID),
		errors.Is(err, service.ErrMissingProgramTitle),
		errors.Is(err, service.ErrInvalidProgramPrice):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, repository.ErrDuplicateEmail):
		return http.StatusConflict

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
