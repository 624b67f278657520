package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/budget-control/backend/internal/domain/valueobject"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// RegisterValidations teaches gin's validator the custom rules used by the request
// DTOs and makes it report JSON field names.
func RegisterValidations() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	engine.RegisterTagNameFunc(jsonFieldName)

	if err := engine.RegisterValidation("cpf", validateCPF); err != nil {
		return fmt.Errorf("failed to register cpf validation: %w", err)
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateCPF(fl validator.FieldLevel) bool {
	return valueobject.IsValidCPF(fl.Field().String())
}

// ToFieldErrors converts binding failures into one FieldError per failing field.
func ToFieldErrors(errs validator.ValidationErrors) []FieldError {
	fieldErrors := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return fieldErrors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "email":
		return "must be a well-formed email address"
	case "datetime":
		return "must be a date in the format YYYY-MM-DD"
	case "cpf":
		return "must be a valid CPF"
	default:
		return "is invalid"
	}
}

// parseDate converts a binding-validated date string.
func parseDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	date, err := time.Parse(DateLayout, *raw)
	if err != nil {
		return nil
	}
	return &date
}

func formatDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	formatted := date.Format(DateLayout)
	return &formatted
}
