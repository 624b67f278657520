package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
)

// CreateGroupInput represents the input for group creation.
type CreateGroupInput struct {
	Name        string
	Description string
	UserID      uuid.UUID
	ReferenceID *uuid.UUID
}

// CreateGroupOutput represents the output of group creation.
type CreateGroupOutput struct {
	Group *entity.Group
}

// CreateGroupUseCase handles group creation.
type CreateGroupUseCase struct {
	groupRepo adapter.GroupRepository
	validator *Validator
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(groupRepo adapter.GroupRepository, validator *Validator) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo: groupRepo,
		validator: validator,
	}
}

// Execute validates and persists a new group.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	group := entity.NewGroup(input.Name, input.Description, input.UserID)
	group.ReferenceID = input.ReferenceID

	if err := uc.validator.Validate(ctx, group); err != nil {
		return nil, err
	}

	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return &CreateGroupOutput{Group: group}, nil
}
