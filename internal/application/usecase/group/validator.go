// Package group contains group management use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/application/validator"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// Validator enforces required fields and uniqueness of (name, user ID, reference ID).
type Validator struct {
	groupRepo adapter.GroupRepository
}

// NewValidator creates a new Validator instance.
func NewValidator(groupRepo adapter.GroupRepository) *Validator {
	return &Validator{
		groupRepo: groupRepo,
	}
}

// Validate runs every check against a candidate group.
func (v *Validator) Validate(ctx context.Context, group *entity.Group) error {
	if group.Name == "" {
		return domainerror.NewMissingRequiredFieldError("name", "Group name cannot be null")
	}
	if group.UserID == uuid.Nil {
		return domainerror.NewMissingRequiredFieldError("userId", "Group user ID cannot be null")
	}

	matches, err := v.groupRepo.FindByIdentity(ctx, group)
	if err != nil {
		return fmt.Errorf("failed to look up duplicate groups: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, match.ID)
	}

	if validator.HasConflict(group.ID, ids...) {
		return domainerror.NewDuplicateRegistrationError("Group already exists")
	}
	return nil
}
