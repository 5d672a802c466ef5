package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode classifies client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeAuth indicates an authentication/authorization failure (401/403)
	// or a credential that could not be resolved.
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeValidation indicates a rejected payload (other 4xx) or a
	// client-side validation failure.
	ErrCodeValidation
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// fallbackMessage is reported when a failure response carries no usable
// detail field.
const fallbackMessage = "API error"

// Error is a structured API client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for errors raised before or
	// below the HTTP exchange).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message is the backend's detail message for API errors, or "API error"
	// when the response carried none.
	Message string
	// Body is the raw response body (nil for pre-request errors).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:    ErrCodeTimeout,
		Message: err.Error(),
		Err:     err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:    ErrCodeConnection,
		Message: err.Error(),
		Err:     err,
	}
}

// NewCredentialError creates an auth error for a credential that could not
// be resolved. The cause stays wrapped, so errors.Is checks against
// credentials.ErrNoSession keep working.
func NewCredentialError(err error) *Error {
	return &Error{
		Code:    ErrCodeAuth,
		Message: err.Error(),
		Err:     err,
	}
}

// NewValidationError creates a client-side validation error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewAPIError creates an error for a non-2xx response, classified by status
// code. The message is the body's detail field when present, otherwise
// "API error". Status code and raw body are preserved.
func NewAPIError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       classifyStatus(statusCode),
		Message:    detailMessage(body),
		Body:       body,
	}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return NewAPIError(statusCode, body)
}

func classifyStatus(statusCode int) ErrorCode {
	switch {
	case statusCode == 401 || statusCode == 403:
		return ErrCodeAuth
	case statusCode == 404:
		return ErrCodeNotFound
	case statusCode == 429:
		return ErrCodeRateLimit
	case statusCode >= 400 && statusCode < 500:
		return ErrCodeValidation
	default:
		return ErrCodeServer
	}
}

// detailMessage extracts the detail field from a failure response body.
// FastAPI validation failures carry a detail array instead of a string;
// those fall back to the generic message as well.
func detailMessage(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return fallbackMessage
	}
	return payload.Detail
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsAuth checks if an error is an authentication error.
func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeAuth
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

// IsRateLimit checks if an error is a rate-limit error.
func IsRateLimit(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRateLimit
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeValidation
}

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeServer
}
