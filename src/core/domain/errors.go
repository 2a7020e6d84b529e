package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.
// Every failure a caller can observe wraps exactly one of these sentinels.

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration is returned when the connection string is missing or invalid.
	// It is fatal at startup.
	ErrConfiguration = errors.New("configuration error")

	// ErrConnection is returned when a connection cannot be acquired from the pool.
	ErrConnection = errors.New("connection error")

	// ErrQuery is returned when the driver reports a failure executing SQL.
	ErrQuery = errors.New("query error")

	// ErrRowMapping is returned when a result row cannot be mapped to a Choice.
	ErrRowMapping = errors.New("row mapping error")

	// ErrReplyCancelled is returned when the worker could not fulfill a reply slot.
	ErrReplyCancelled = errors.New("reply cancelled")

	// ErrShutdown is returned for requests refused or abandoned during shutdown.
	ErrShutdown = errors.New("client shut down")
)

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrQuery)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation and mapping errors)
	Field string

	// Err is the driver or runtime error that caused the failure, if any
	Err error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := e.Base.Error()
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field: %s)", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns both the base error and the cause for errors.Is/As support.
func (e *DomainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Base}
	}
	return []error{e.Base, e.Err}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(message string, err error) *DomainError {
	return &DomainError{Base: ErrConfiguration, Message: message, Err: err}
}

// NewConnectionError wraps a pool acquisition failure.
func NewConnectionError(err error) *DomainError {
	return &DomainError{Base: ErrConnection, Message: "acquire connection", Err: err}
}

// NewQueryError wraps a driver failure for the given statement.
func NewQueryError(err error) *DomainError {
	return &DomainError{Base: ErrQuery, Err: err}
}

// NewRowMappingError reports a row that could not be mapped.
func NewRowMappingError(row int, field string, err error) *DomainError {
	return &DomainError{
		Base:    ErrRowMapping,
		Message: fmt.Sprintf("row %d", row),
		Field:   field,
		Err:     err,
	}
}

// NewReplyCancelledError reports a reply slot that was never fulfilled.
func NewReplyCancelledError(message string) *DomainError {
	return &DomainError{Base: ErrReplyCancelled, Message: message}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsConnectionError checks if an error is a connection acquisition error.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsQueryError checks if an error is a query execution error.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrQuery)
}

// IsRowMappingError checks if an error is a row mapping error.
func IsRowMappingError(err error) bool {
	return errors.Is(err, ErrRowMapping)
}

// IsReplyCancelled checks if an error is a cancelled reply.
func IsReplyCancelled(err error) bool {
	return errors.Is(err, ErrReplyCancelled)
}

// IsShutdown checks if an error is caused by client shutdown.
func IsShutdown(err error) bool {
	return errors.Is(err, ErrShutdown)
}
