package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/domain/entity"
)

// UserFilter defines the optional criteria for listing users. Predicates are AND-ed.
type UserFilter struct {
	FirstName *string
	LastName  *string
	Email     *string
	CPF       *string
	BirthDate *time.Time
	Role      *entity.UserRole
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	// Returns domainerror.ErrRecordNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	// Returns domainerror.ErrRecordNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIdentity retrieves every user whose first name, last name, CPF and email equal the candidate's.
	FindByIdentity(ctx context.Context, candidate *entity.User) ([]*entity.User, error)

	// FindByFilter retrieves users matching all supplied filter criteria.
	FindByFilter(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// FindByGroupID retrieves the members of a group.
	FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.User, error)

	// Update saves every field of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
