package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// DeleteUserUseCase handles user deletion.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
	}
}

// Execute removes the user with the given ID.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordNotFoundError("User not found")
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
