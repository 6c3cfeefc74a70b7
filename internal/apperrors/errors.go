package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUpstream indicates that an external data source failed or answered with an unexpected shape.
// The caller's input was acceptable; a dependency was not.
var ErrUpstream = errors.New("upstream error")

// ErrInternal indicates an unexpected failure inside the service.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a client-facing message
// while still matching its sentinel through errors.Is.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil && !isSentinel(e.Err) {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether the AppError belongs to the sentinel class of target.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrDuplicate:
		return e.Code == http.StatusConflict
	case ErrUpstream:
		return e.Code == http.StatusBadGateway
	case ErrInternal:
		return e.Code == http.StatusInternalServerError
	}
	return false
}

func isSentinel(err error) bool {
	switch err {
	case ErrNotFound, ErrValidation, ErrDuplicate, ErrUpstream, ErrInternal:
		return true
	}
	return false
}

// NewAppError builds an AppError with an explicit code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError returns a BadRequest-class error.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNotFoundError returns a NotFound-class error.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError returns a Conflict-class error.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewUpstreamError returns an error for a failing external source. cause may be nil.
func NewUpstreamError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrUpstream
	}
	return &AppError{Code: http.StatusBadGateway, Message: message, Err: cause}
}

// NewInternalServerError wraps an unexpected failure.
func NewInternalServerError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: cause}
}

// StatusCode maps any error to the HTTP status the handlers should answer with.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message of err, hiding internal details.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != http.StatusInternalServerError {
		return appErr.Message
	}
	switch StatusCode(err) {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusBadGateway:
		return err.Error()
	}
	return "internal server error"
}
