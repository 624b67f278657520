package user

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

// UserPatch carries the mutable profile fields. Nil fields are left untouched.
type UserPatch struct {
	FirstName *string
	LastName  *string
	GroupID   *uuid.UUID
}

// ApplyTo copies every supplied field onto user.
func (p UserPatch) ApplyTo(user *entity.User) {
	if p.FirstName != nil {
		user.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		user.LastName = *p.LastName
	}
	if p.GroupID != nil {
		groupID := *p.GroupID
		user.GroupID = &groupID
	}
}

// UpdateUserInput represents the input for a profile update.
type UpdateUserInput struct {
	ID    uuid.UUID
	Patch UserPatch
}

// UpdateUserUseCase handles partial profile updates.
type UpdateUserUseCase struct {
	userRepo  adapter.UserRepository
	groupRepo adapter.GroupRepository
	validator *Validator
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository, groupRepo adapter.GroupRepository, validator *Validator) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		validator: validator,
	}
}

// Execute merges the patch onto the stored user, revalidates and saves it.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*entity.User, error) {
	if input.ID == uuid.Nil {
		return nil, domainerror.NewInvalidOperationError("User ID cannot be null")
	}

	user, err := uc.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	input.Patch.ApplyTo(user)
	user.UpdatedAt = time.Now().UTC()

	if err := uc.validator.Validate(ctx, user); err != nil {
		return nil, err
	}

	if err := ensureGroupExists(ctx, uc.groupRepo, input.Patch.GroupID); err != nil {
		return nil, err
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
