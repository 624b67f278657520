package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// ensureGroupExists checks that a referenced group is present in the store.
func ensureGroupExists(ctx context.Context, groupRepo adapter.GroupRepository, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}

	if _, err := groupRepo.FindByID(ctx, *groupID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewInvalidFieldError("groupId", "Group not found")
		}
		return fmt.Errorf("failed to find group: %w", err)
	}
	return nil
}
