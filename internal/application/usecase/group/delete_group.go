package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// DeleteGroupUseCase handles group deletion. Members keep their now dangling reference.
type DeleteGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(groupRepo adapter.GroupRepository) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute removes the group with the given ID.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.groupRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordNotFoundError("Group not found")
		}
		return fmt.Errorf("failed to find group: %w", err)
	}

	if err := uc.groupRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}
