package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// GetUserUseCase handles lookup of a single user.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the user with the given ID, or nil when it does not exist.
func (uc *GetUserUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
