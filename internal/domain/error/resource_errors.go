// Package error defines domain-specific errors for the Budget Control application.
package error

import "errors"

// Resource domain errors. Every ResourceError unwraps to one of these.
var (
	// ErrRecordNotFound is returned when no record exists for the given identity.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateRegistration is returned when a record with the same identity tuple already exists.
	ErrDuplicateRegistration = errors.New("duplicate registration")

	// ErrMissingRequiredField is returned when a business-mandatory field is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidField is returned for malformed enum values, date ranges and out-of-bounds amounts.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidIdentifierFormat is returned when an identifier is not a canonical UUID.
	ErrInvalidIdentifierFormat = errors.New("invalid identifier format")

	// ErrInvalidOperation is returned when an operation is not allowed in the record's current state.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotAuthorized is reserved for ownership enforcement.
	ErrNotAuthorized = errors.New("not authorized")
)

// ResourceErrorCode defines error codes for resource errors.
// Format: RES-XXYYYY where XX is category and YYYY is specific error.
type ResourceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDuplicateRegistration   ResourceErrorCode = "RES-010001"
	ErrCodeMissingRequiredField    ResourceErrorCode = "RES-010002"
	ErrCodeInvalidField            ResourceErrorCode = "RES-010003"
	ErrCodeInvalidIdentifierFormat ResourceErrorCode = "RES-010004"
	ErrCodeInvalidOperation        ResourceErrorCode = "RES-010005"
	ErrCodeNotAuthorized           ResourceErrorCode = "RES-010006"

	// Lookup errors (02XXXX)
	ErrCodeRecordNotFound ResourceErrorCode = "RES-020001"
)

// ResourceError represents a resource error with code, offending field and message.
type ResourceError struct {
	Code    ResourceErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError with the given code and message.
func NewResourceError(code ResourceErrorCode, field, message string, err error) *ResourceError {
	return &ResourceError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// NewDuplicateRegistrationError creates a DuplicateRegistration error.
func NewDuplicateRegistrationError(message string) *ResourceError {
	return NewResourceError(ErrCodeDuplicateRegistration, "", message, ErrDuplicateRegistration)
}

// NewMissingRequiredFieldError creates a MissingRequiredField error for the given field.
func NewMissingRequiredFieldError(field, message string) *ResourceError {
	return NewResourceError(ErrCodeMissingRequiredField, field, message, ErrMissingRequiredField)
}

// NewInvalidFieldError creates an InvalidField error for the given field.
func NewInvalidFieldError(field, message string) *ResourceError {
	return NewResourceError(ErrCodeInvalidField, field, message, ErrInvalidField)
}

// NewInvalidIdentifierFormatError creates an InvalidIdentifierFormat error for the raw value.
func NewInvalidIdentifierFormatError(raw string) *ResourceError {
	return NewResourceError(ErrCodeInvalidIdentifierFormat, "id", "Invalid UUID format: "+raw, ErrInvalidIdentifierFormat)
}

// NewInvalidOperationError creates an InvalidOperation error.
func NewInvalidOperationError(message string) *ResourceError {
	return NewResourceError(ErrCodeInvalidOperation, "", message, ErrInvalidOperation)
}

// NewNotAuthorizedError creates a NotAuthorized error.
func NewNotAuthorizedError(message string) *ResourceError {
	return NewResourceError(ErrCodeNotAuthorized, "", message, ErrNotAuthorized)
}

// NewRecordNotFoundError creates a RecordNotFound error.
func NewRecordNotFoundError(message string) *ResourceError {
	return NewResourceError(ErrCodeRecordNotFound, "", message, ErrRecordNotFound)
}
