// Package apierror provides the standardized error envelope for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error for all 4xx/5xx HTTP responses.
// It doubles as the response body: {"error": ..., "statusCode": ...}.
type APIError struct {
	Message    string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func (e *APIError) Error() string { return e.Message }

func New(statusCode int, msg string) *APIError {
	return &APIError{Message: msg, StatusCode: statusCode}
}

// Taxonomy constructors. Services return these; handlers only map them.

func Validation(msg string) *APIError    { return New(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *APIError  { return New(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *APIError     { return New(http.StatusForbidden, msg) }
func NotFound(msg string) *APIError      { return New(http.StatusNotFound, msg) }
func Configuration(msg string) *APIError { return New(http.StatusInternalServerError, msg) }

// From extracts an *APIError from err, or wraps it as a 500.
// The original message of an uncategorized error is kept here; the handler
// layer decides whether it may be shown outside development.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return New(http.StatusInternalServerError, err.Error())
}
