// Package errors provides standardized error handling for the admin service.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// The data API is unreachable or the call timed out.
	ErrCodeNetworkFailure ErrorCode = "NETWORK_FAILURE"
	// The data API responded but rejected the operation.
	ErrCodeAPIRejection ErrorCode = "API_REJECTION"
	// The identity provider rejected the credentials.
	ErrCodeAuthFailure ErrorCode = "AUTH_FAILURE"
	// A confirmed mutation referenced an id no longer present locally.
	// Handled as a logged no-op, never fatal.
	ErrCodeStateInconsistency ErrorCode = "LOCAL_STATE_INCONSISTENCY"

	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewNetworkFailureError creates a retryable error for an unreachable or
// timed-out external service.
func NewNetworkFailureError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNetworkFailure,
		Message:   fmt.Sprintf("External service '%s' unreachable", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAPIRejectionError creates a non-retryable error for an operation the data
// API refused (validation, permission, not found).
func NewAPIRejectionError(operation, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAPIRejection,
		Message:   fmt.Sprintf("Data API rejected operation '%s'", operation),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthFailureError creates a non-retryable credential error. The message is
// intentionally generic; provider internals go into Details for logs only and
// must never reach the client.
func NewAuthFailureError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuthFailure,
		Message:   "Invalid email or password",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStateInconsistencyError records a reconciler patch that matched nothing.
func NewStateInconsistencyError(entity, id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStateInconsistency,
		Message:   "Mutation patch matched no local entity",
		Details:   fmt.Sprintf("entity: %s, id: %s", entity, id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable payload validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request payload validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable missing/expired session error.
func NewSessionNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Session not found or expired",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResourceNotFoundError creates a non-retryable missing resource error.
func NewResourceNotFoundError(resource, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResourceNotFound,
		Message:   fmt.Sprintf("Resource not found: %s", resource),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandardError unwraps err into a *StandardError when possible.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	stdErr, ok := AsStandardError(err)
	return ok && stdErr.Code == code
}

// HTTPStatus maps an error to the status the admin API responds with. Unknown
// errors map to 500.
func HTTPStatus(err error) int {
	stdErr, ok := AsStandardError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch stdErr.Code {
	case ErrCodeNetworkFailure:
		return http.StatusBadGateway
	case ErrCodeAPIRejection:
		return http.StatusUnprocessableEntity
	case ErrCodeAuthFailure:
		return http.StatusUnauthorized
	case ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeResourceNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
