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

// GetGroupUseCase handles lookup of a single group.
type GetGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewGetGroupUseCase creates a new GetGroupUseCase instance.
func NewGetGroupUseCase(groupRepo adapter.GroupRepository) *GetGroupUseCase {
	return &GetGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute returns the group with the given ID, or nil when it does not exist.
func (uc *GetGroupUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	group, err := uc.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return group, nil
}
