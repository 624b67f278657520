// Package user contains user registration and profile use cases.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/application/validator"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// Validator enforces required fields and uniqueness of
// (first name, last name, CPF, email). The first violation is returned.
type Validator struct {
	userRepo adapter.UserRepository
}

// NewValidator creates a new Validator instance.
func NewValidator(userRepo adapter.UserRepository) *Validator {
	return &Validator{
		userRepo: userRepo,
	}
}

// Validate runs every check against a candidate user.
func (v *Validator) Validate(ctx context.Context, user *entity.User) error {
	if err := checkRequired(user); err != nil {
		return err
	}

	matches, err := v.userRepo.FindByIdentity(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to look up duplicate users: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.ID)
	}

	if validator.HasConflict(user.ID, ids...) {
		return domainerror.NewDuplicateRegistrationError("User already exists")
	}
	return nil
}

func checkRequired(user *entity.User) error {
	switch {
	case user.FirstName == "":
		return domainerror.NewMissingRequiredFieldError("firstName", "User first name cannot be null")
	case user.LastName == "":
		return domainerror.NewMissingRequiredFieldError("lastName", "User last name cannot be null")
	case user.CPF == "":
		return domainerror.NewMissingRequiredFieldError("cpf", "User CPF cannot be null")
	case user.Email == "":
		return domainerror.NewMissingRequiredFieldError("email", "User email cannot be null")
	}
	return nil
}
