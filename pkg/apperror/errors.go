package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies failures the dashboard surfaces to the user
type Kind string

const (
	// KindStore is a connection or query failure against the sales store
	KindStore Kind = "store"
	// KindValidation is an analysis request the data cannot satisfy
	KindValidation Kind = "validation"
	// KindInput is a form submission with missing or invalid fields
	KindInput Kind = "input"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Kind    Kind         `json:"kind,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid username or password"}
	ErrTokenExpired       = &AppError{Code: http.StatusUnauthorized, Message: "Token has expired"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewStoreError wraps a store failure for the operation op
func NewStoreError(op string, err error) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: "Sales store unavailable (" + op + ")",
		Kind:    KindStore,
		Err:     err,
	}
}

// NewValidationError reports an analysis that cannot run on the current data
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Kind:    KindValidation,
	}
}

// NewInputError creates a form input error carrying the offending fields
func NewInputError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Invalid form input",
		Kind:    KindInput,
		Errors:  fieldErrors,
	}
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible. Any other error
// becomes a generic internal error that keeps the cause for logging only.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}
