package user

import (
	"context"
	"fmt"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/domain/valueobject"
)

// ListUsersUseCase handles filtered user listing.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute returns every user matching all supplied criteria.
func (uc *ListUsersUseCase) Execute(ctx context.Context, filter adapter.UserFilter) ([]*entity.User, error) {
	if filter.CPF != nil {
		cpf := valueobject.NormalizeCPF(*filter.CPF)
		filter.CPF = &cpf
	}

	users, err := uc.userRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
