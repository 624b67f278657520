package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-control/backend/internal/domain/entity"
)

// GroupModel represents the groups table in the database.
type GroupModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(50);not null"`
	Description string     `gorm:"type:varchar(255)"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReferenceID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GroupModel.
func (GroupModel) TableName() string {
	return "groups"
}

// BeforeCreate assigns the primary key and, when absent, the reference ID of a new group.
func (m *GroupModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.ReferenceID == nil {
		referenceID := uuid.New()
		m.ReferenceID = &referenceID
	}
	return nil
}

// ToEntity converts a GroupModel to a domain Group entity.
func (m *GroupModel) ToEntity() *entity.Group {
	return &entity.Group{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		UserID:      m.UserID,
		ReferenceID: m.ReferenceID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GroupFromEntity creates a GroupModel from a domain Group entity.
func GroupFromEntity(group *entity.Group) *GroupModel {
	return &GroupModel{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		UserID:      group.UserID,
		ReferenceID: group.ReferenceID,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}
