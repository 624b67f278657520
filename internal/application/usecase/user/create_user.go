package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/domain/valueobject"
)

// CreateUserInput represents the input for user registration.
type CreateUserInput struct {
	FirstName string
	LastName  string
	BirthDate *time.Time
	CPF       string
	Email     string
	Phone     string
	Password  string
	Role      entity.UserRole
	GroupID   *uuid.UUID
}

// CreateUserOutput represents the output of user registration.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user registration.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	groupRepo       adapter.GroupRepository
	passwordService adapter.PasswordService
	validator       *Validator
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	groupRepo adapter.GroupRepository,
	passwordService adapter.PasswordService,
	validator *Validator,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		groupRepo:       groupRepo,
		passwordService: passwordService,
		validator:       validator,
	}
}

// Execute validates the user, hashes the password and persists the user.
// The plaintext password never reaches the store.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	user := entity.NewUser(input.FirstName, input.LastName, valueobject.NormalizeCPF(input.CPF), input.Email)
	user.BirthDate = input.BirthDate
	user.Phone = input.Phone
	user.GroupID = input.GroupID
	if input.Role != "" {
		user.Role = input.Role
	}

	if err := uc.validator.Validate(ctx, user); err != nil {
		return nil, err
	}

	if err := ensureGroupExists(ctx, uc.groupRepo, user.GroupID); err != nil {
		return nil, err
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{User: user}, nil
}
