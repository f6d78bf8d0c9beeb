package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error values for common scenarios
var (
	// 404 Not Found
	ErrDatasetNotFound = New(http.StatusNotFound, "DATASET_NOT_FOUND", "No dataset source could be resolved")
	ErrViewNotFound    = New(http.StatusNotFound, "VIEW_NOT_FOUND", "Unknown analytic view")

	// 422 Unprocessable Entity
	ErrDatasetUnparseable = New(http.StatusUnprocessableEntity, "DATASET_UNPARSEABLE", "Dataset source could not be parsed as tabular data")
	ErrColumnUnavailable  = New(http.StatusUnprocessableEntity, "COLUMN_UNAVAILABLE", "The view depends on a column the dataset does not declare")
	ErrInsufficientData   = New(http.StatusUnprocessableEntity, "INSUFFICIENT_DATA", "Not enough data points for a defined statistical result")

	// 429 Too Many Requests
	ErrRateLimitExceeded = New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")
)

// ErrValidation creates a validation error with field details
func ErrValidation(field, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", ValidationError{
		Field:   field,
		Message: message,
	})
}

// DatasetUnparseableError carries the parse cause to the caller
func DatasetUnparseableError(err error) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, "DATASET_UNPARSEABLE",
		"Dataset source could not be parsed as tabular data", err.Error())
}
