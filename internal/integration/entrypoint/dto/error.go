// Package dto defines data transfer objects for API requests and responses.
package dto

// Fixed messages for failures that carry no domain message.
const (
	MessageMalformedBody   = "Malformed request body."
	MessageValidationError = "Validation error."
	MessageUnexpected      = "An unexpected error occurred."
	MessageTooManyRequests = "Too many requests. Please try again later."
	MessageRouteNotFound   = "Resource not found."
)

// FieldError describes a single failing field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// NewErrorResponse builds an ErrorResponse. Errors is never null in the encoded body.
func NewErrorResponse(status int, message string, errors ...FieldError) ErrorResponse {
	if errors == nil {
		errors = []FieldError{}
	}
	return ErrorResponse{
		Status:  status,
		Message: message,
		Errors:  errors,
	}
}

// CreatedResponse is the body returned after a resource is created.
type CreatedResponse struct {
	ID string `json:"id"`
}
