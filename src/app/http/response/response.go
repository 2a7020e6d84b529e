// Package response defines consistent HTTP response structures.
// All API responses should use these types for consistency.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"choicefetch/src/core/domain"
)

// Success represents a successful response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "QUERY_FAILED", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation and mapping errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	abort(c, http.StatusBadRequest, "BAD_REQUEST", message, "", requestID)
}

// ValidationError sends a 400 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	abort(c, http.StatusBadRequest, "VALIDATION_ERROR", message, field, requestID)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", "", requestID)
}

func abort(c *gin.Context, status int, code, message, field, requestID string) {
	c.JSON(status, Error{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Field:     field,
			RequestID: requestID,
		},
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// This centralizes error handling and ensures consistent error responses.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var domainErr *domain.DomainError
	errors.As(err, &domainErr)

	switch {
	case domain.IsValidationError(err):
		if domainErr != nil {
			ValidationError(c, domainErr.Field, domainErr.Message, requestID)
		} else {
			BadRequest(c, err.Error(), requestID)
		}
	case domain.IsConnectionError(err):
		abort(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Could not acquire a database connection", "", requestID)
	case domain.IsShutdown(err):
		abort(c, http.StatusServiceUnavailable, "SHUTTING_DOWN", "The service is shutting down", "", requestID)
	case domain.IsQueryError(err):
		abort(c, http.StatusBadGateway, "QUERY_FAILED", "The database rejected the query", "", requestID)
	case domain.IsRowMappingError(err):
		field := ""
		if domainErr != nil {
			field = domainErr.Field
		}
		abort(c, http.StatusBadGateway, "ROW_MAPPING_FAILED", "The query returned a malformed row", field, requestID)
	case errors.Is(err, context.DeadlineExceeded):
		abort(c, http.StatusGatewayTimeout, "TIMEOUT", "The query did not complete in time", "", requestID)
	default:
		InternalError(c, requestID)
	}
}
