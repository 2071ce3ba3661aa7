package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("an account with this email already exists")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Store errors
var (
	ErrEntityNotFound    = errors.New("entity not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidationFailed  = errors.New("validation failed")
)

// Persistence errors. These are logged and absorbed at the storage layer;
// they never propagate to store callers.
var (
	ErrPersistenceUnavailable = errors.New("persistent storage unavailable")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewEntityNotFoundError creates a not-found error naming the collection and id
func NewEntityNotFoundError(collection, id string) error {
	return &CustomError{
		Err:     ErrEntityNotFound,
		Message: collection + " " + id + " not found",
	}
}

// NewValidationError creates a validation error with per-field details
func NewValidationError(details map[string]interface{}) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: "validation failed",
		Details: details,
	}
}
