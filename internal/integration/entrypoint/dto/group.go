package dto

import (
	"time"

	"github.com/budget-control/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for group creation.
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"max=50"`
	Description string  `json:"description" binding:"max=255"`
	UserID      *string `json:"userId"`
	ReferenceID *string `json:"referenceId"`
}

// UpdateGroupRequest represents the request body for a partial group update.
type UpdateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// GroupResponse represents a group in API responses.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	ReferenceID *string   `json:"referenceId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToGroupResponse converts a domain Group to a GroupResponse.
func ToGroupResponse(group *entity.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		UserID:      group.UserID.String(),
		ReferenceID: formatOptionalID(group.ReferenceID),
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// ToGroupResponses converts a list of domain groups.
func ToGroupResponses(groups []*entity.Group) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = ToGroupResponse(group)
	}
	return responses
}
