// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, storage errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Reason is set on authentication failures: missing, expired or invalid.
type APIError struct {
	Detail string `json:"detail"`
	Reason string `json:"reason,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func WithReason(msg, reason string) *APIError {
	return &APIError{Detail: msg, Reason: reason}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}
