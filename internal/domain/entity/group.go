package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a set of users sharing their finances.
// ReferenceID is a shareable join code, generated on first persist when absent.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	UserID      uuid.UUID
	ReferenceID *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGroup creates a new, not yet persisted Group owned by userID.
func NewGroup(name, description string, userID uuid.UUID) *Group {
	now := time.Now().UTC()

	return &Group{
		Name:        name,
		Description: description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
