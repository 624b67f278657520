package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// ListMembersUseCase lists the users that reference a group.
type ListMembersUseCase struct {
	groupRepo adapter.GroupRepository
	userRepo  adapter.UserRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(groupRepo adapter.GroupRepository, userRepo adapter.UserRepository) *ListMembersUseCase {
	return &ListMembersUseCase{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// Execute returns the members of the group, failing when the group does not exist.
func (uc *ListMembersUseCase) Execute(ctx context.Context, groupID uuid.UUID) ([]*entity.User, error) {
	if _, err := uc.groupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordNotFoundError("Group not found")
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	members, err := uc.userRepo.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	return members, nil
}
