package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrIntegrityViolation = errors.New("integrity violation")
)

// AppError represents an application error with a stable kind and HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, kind, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "not_found", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "validation_error", message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "unauthorized", message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "forbidden", message, ErrForbidden)
}

func UnprocessableEntity(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, "business_rule", message, err)
}

// InternalError hides the underlying detail from the caller; the wrapped
// error is kept for logging only.
func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "storage_unavailable", "internal server error", err)
}
