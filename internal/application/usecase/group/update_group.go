package group

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// GroupPatch carries the mutable group fields. Nil fields are left untouched.
type GroupPatch struct {
	Name        *string
	Description *string
}

// ApplyTo copies every supplied field onto group.
func (p GroupPatch) ApplyTo(group *entity.Group) {
	if p.Name != nil {
		group.Name = *p.Name
	}
	if p.Description != nil {
		group.Description = *p.Description
	}
}

// UpdateGroupInput represents the input for a group update.
type UpdateGroupInput struct {
	ID    uuid.UUID
	Patch GroupPatch
}

// UpdateGroupUseCase handles partial group updates.
type UpdateGroupUseCase struct {
	groupRepo adapter.GroupRepository
	validator *Validator
}

// NewUpdateGroupUseCase creates a new UpdateGroupUseCase instance.
func NewUpdateGroupUseCase(groupRepo adapter.GroupRepository, validator *Validator) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{
		groupRepo: groupRepo,
		validator: validator,
	}
}

// Execute merges the patch onto the stored group, revalidates and saves it.
func (uc *UpdateGroupUseCase) Execute(ctx context.Context, input UpdateGroupInput) (*entity.Group, error) {
	if input.ID == uuid.Nil {
		return nil, domainerror.NewInvalidOperationError("Group ID cannot be null")
	}

	group, err := uc.groupRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordNotFoundError("Group not found")
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	input.Patch.ApplyTo(group)
	group.UpdatedAt = time.Now().UTC()

	if err := uc.validator.Validate(ctx, group); err != nil {
		return nil, err
	}

	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}
