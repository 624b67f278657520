package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRateLimited is returned when a client exceeds the allowed login attempts.
	ErrRateLimited = errors.New("too many requests")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010002"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
