// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// InvalidCredentialsMessage is returned for unknown emails and wrong passwords alike.
const InvalidCredentialsMessage = "Username or password is incorrect"

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User *entity.User
}

// LoginUserUseCase checks a user's credentials. No session or token is issued.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	user.RecordLogin(time.Now().UTC())
	if err := uc.userRepo.Update(ctx, user); err != nil {
		// Recording the login is best effort.
		slog.DebugContext(ctx, "Failed to record login", "user_id", user.ID, "error", err)
	}

	return &LoginUserOutput{User: user}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		InvalidCredentialsMessage,
		domainerror.ErrInvalidCredentials,
	)
}
