// Package validator holds the stateless checks shared by every resource use case.
package validator

import (
	"github.com/google/uuid"

	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// canonicalUUIDLength is the length of the 8-4-4-4-12 hyphenated form.
const canonicalUUIDLength = 36

// ParseID validates that raw is a canonical UUID before it is used as a lookup key.
func ParseID(raw string) (uuid.UUID, error) {
	if len(raw) != canonicalUUIDLength {
		return uuid.Nil, domainerror.NewInvalidIdentifierFormatError(raw)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerror.NewInvalidIdentifierFormatError(raw)
	}

	return id, nil
}

// ParseOptionalID parses raw when present. Empty input yields nil.
func ParseOptionalID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := ParseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
