package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors raised by services. Handlers translate these into HTTP
// status codes; anything that doesn't match one of them is treated as an
// internal error and surfaced opaquely.

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials indicates a failed login attempt. The message never
// distinguishes an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAccountDeactivated indicates the credentials were correct but the account is disabled.
var ErrAccountDeactivated = errors.New("account is deactivated")

// ErrUnauthorized indicates a session token that could not be validated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenExpired indicates a session token past its expiry. Kept distinct
// from ErrUnauthorized so handlers can return a specific message.
var ErrTokenExpired = errors.New("token has expired")

// ErrMissingToken indicates the request carried no session cookie at all.
var ErrMissingToken = errors.New("token not received")

// DomainError attaches a client-safe message to one of the sentinel kinds
// above. errors.Is matches against the kind, while Error() yields exactly the
// message the transport layer should return.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

// E builds a DomainError. Services use this at the point of detection; the
// error passes through to the handler unchanged.
func E(kind error, message string) error {
	return &DomainError{Kind: kind, Message: message}
}

// AppError pairs an HTTP status code with a client-safe message. Handlers
// use the constructors below instead of building responses inline.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewBadRequestError creates an AppError with a 400 status.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewUnauthorizedError creates an AppError with a 401 status.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError creates an AppError with a 403 status.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

// NewNotFoundError creates an AppError with a 404 status.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewInternalServerError creates an AppError with a 500 status. The message
// should be generic; internal detail belongs in the logs, not the response.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// StatusCodeFor maps a service error to the HTTP status the transport layer
// should respond with. Unrecognized errors map to 500.
func StatusCodeFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicate), errors.Is(err, ErrMissingToken):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountDeactivated):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
