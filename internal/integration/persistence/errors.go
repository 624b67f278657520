// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"

	"gorm.io/gorm"

	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// translateWriteError maps unique constraint violations to a duplicate registration error.
func translateWriteError(err error, label string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.NewDuplicateRegistrationError(label + " already exists")
	}
	return err
}

// translateReadError maps a missing row to domainerror.ErrRecordNotFound.
func translateReadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerror.ErrRecordNotFound
	}
	return err
}
