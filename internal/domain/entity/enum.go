// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strings"

	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// parseEnum trims and uppercases raw and resolves it against allowed.
// The error carries the raw value as received.
func parseEnum[T ~string](raw string, allowed []T, field, typeName string) (T, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, value := range allowed {
		if string(value) == normalized {
			return value, nil
		}
	}

	var zero T
	return zero, domainerror.NewInvalidFieldError(field, fmt.Sprintf("Invalid value provided for %s: %s", typeName, raw))
}
