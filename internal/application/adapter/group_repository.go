package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/domain/entity"
)

// GroupFilter defines the optional criteria for listing groups. Predicates are AND-ed.
type GroupFilter struct {
	Name        *string
	UserID      *uuid.UUID
	ReferenceID *uuid.UUID
}

// GroupRepository defines the interface for group persistence operations.
type GroupRepository interface {
	// Create persists a new group, assigning its ID and, when absent, its reference ID.
	Create(ctx context.Context, group *entity.Group) error

	// FindByID retrieves a group by ID.
	// Returns domainerror.ErrRecordNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// FindByIdentity retrieves every group whose name, owner and reference ID equal the candidate's.
	// A nil candidate reference ID only matches groups without one.
	FindByIdentity(ctx context.Context, candidate *entity.Group) ([]*entity.Group, error)

	// FindByFilter retrieves groups matching all supplied filter criteria.
	FindByFilter(ctx context.Context, filter GroupFilter) ([]*entity.Group, error)

	// Update saves every field of an existing group.
	Update(ctx context.Context, group *entity.Group) error

	// Delete removes a group by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
