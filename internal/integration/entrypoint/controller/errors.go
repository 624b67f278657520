package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainerror "github.com/budget-control/backend/internal/domain/error"
	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
)

// respondError maps err to its HTTP status and writes the error body.
// Errors outside the domain taxonomy are logged and redacted.
func respondError(ctx *gin.Context, err error) {
	var resourceErr *domainerror.ResourceError
	if errors.As(err, &resourceErr) {
		status := statusForResourceError(resourceErr.Code)
		ctx.JSON(status, dto.NewErrorResponse(status, resourceErr.Message))
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := statusForAuthError(authErr.Code)
		ctx.JSON(status, dto.NewErrorResponse(status, authErr.Message))
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Unexpected error",
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, dto.MessageUnexpected))
}

// statusForResourceError maps resource error codes to HTTP status codes.
func statusForResourceError(code domainerror.ResourceErrorCode) int {
	switch code {
	case domainerror.ErrCodeDuplicateRegistration:
		return http.StatusConflict
	case domainerror.ErrCodeMissingRequiredField:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidField,
		domainerror.ErrCodeInvalidIdentifierFormat,
		domainerror.ErrCodeInvalidOperation,
		domainerror.ErrCodeNotAuthorized:
		return http.StatusBadRequest
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// statusForAuthError maps auth error codes to HTTP status codes.
func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into req. On failure it writes 422 for
// schema violations or 400 for undecodable bodies and returns false.
func bindJSON(ctx *gin.Context, req any) bool {
	err := ctx.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
			http.StatusUnprocessableEntity,
			dto.MessageValidationError,
			dto.ToFieldErrors(validationErrs)...,
		))
		return false
	}

	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, dto.MessageMalformedBody))
	return false
}

// respondCreated writes 201 with a Location header pointing at the new resource.
func respondCreated(ctx *gin.Context, id string) {
	ctx.Header("Location", ctx.Request.URL.Path+"/"+id)
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// respondList writes 200 with items, or 404 when the list is empty.
func respondList[T any](ctx *gin.Context, items []T, notFoundMessage string) {
	if len(items) == 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, notFoundMessage))
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func respondNotFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, message))
}
