package apperrors

import "errors"

// Authentication and authorization errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrInvalidFormat   = errors.New("invalid token format")
	ErrForbidden       = errors.New("forbidden")
)

// Request validation errors
var (
	ErrInvalidRequest = errors.New("invalid request")
)

// Resource errors (read paths only)
var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoomNotFound = errors.New("room not found")
)

// Store and storage errors
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrAttachmentWrite  = errors.New("attachment write failed")
)

// CustomError carries an underlying sentinel plus a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewForbiddenError creates a permission denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrForbidden, Message: message}
}

// NewInvalidRequestError creates a bad request error with a message.
func NewInvalidRequestError(message string) error {
	return &CustomError{Err: ErrInvalidRequest, Message: message}
}

// NewStoreError wraps a backing-store failure. The original error is kept
// for server-side logging but its detail is never sent to the caller.
func NewStoreError(err error) error {
	return &CustomError{Err: ErrStoreUnavailable, Message: "store operation failed: " + err.Error()}
}
