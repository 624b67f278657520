package group

import (
	"context"
	"fmt"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
)

// ListGroupsUseCase handles filtered group listing.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{
		groupRepo: groupRepo,
	}
}

// Execute returns every group matching all supplied criteria.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, filter adapter.GroupFilter) ([]*entity.Group, error) {
	groups, err := uc.groupRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}
