// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-control/backend/internal/domain/entity"
)

// UserModel represents the user_authentication table in the database.
type UserModel struct {
	ID                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName               string     `gorm:"type:varchar(50);not null"`
	LastName                string     `gorm:"type:varchar(50);not null"`
	BirthDate               *time.Time `gorm:"type:date"`
	CPF                     string     `gorm:"column:cpf;type:varchar(14);uniqueIndex;not null"`
	Email                   string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone                   string     `gorm:"type:varchar(20)"`
	EncryptedPassword       string     `gorm:"type:varchar(255);not null"`
	UserAuthenticated       bool       `gorm:"not null;default:false"`
	Role                    string     `gorm:"type:varchar(20);not null"`
	ConfirmationToken       string     `gorm:"type:varchar(255)"`
	RecoveryToken           string     `gorm:"type:varchar(255)"`
	RecoveryTokenExpiration *time.Time
	GroupID                 *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt               time.Time  `gorm:"not null"`
	UpdatedAt               time.Time  `gorm:"not null"`
	InvitedAt               *time.Time
	ConfirmedAt             *time.Time
	LastLoginAt             *time.Time
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "user_authentication"
}

// BeforeCreate assigns the primary key of a new user.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                      m.ID,
		FirstName:               m.FirstName,
		LastName:                m.LastName,
		BirthDate:               m.BirthDate,
		CPF:                     m.CPF,
		Email:                   m.Email,
		Phone:                   m.Phone,
		PasswordHash:            m.EncryptedPassword,
		Authenticated:           m.UserAuthenticated,
		Role:                    entity.UserRole(m.Role),
		ConfirmationToken:       m.ConfirmationToken,
		RecoveryToken:           m.RecoveryToken,
		RecoveryTokenExpiration: m.RecoveryTokenExpiration,
		GroupID:                 m.GroupID,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
		InvitedAt:               m.InvitedAt,
		ConfirmedAt:             m.ConfirmedAt,
		LastLoginAt:             m.LastLoginAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                      user.ID,
		FirstName:               user.FirstName,
		LastName:                user.LastName,
		BirthDate:               user.BirthDate,
		CPF:                     user.CPF,
		Email:                   user.Email,
		Phone:                   user.Phone,
		EncryptedPassword:       user.PasswordHash,
		UserAuthenticated:       user.Authenticated,
		Role:                    string(user.Role),
		ConfirmationToken:       user.ConfirmationToken,
		RecoveryToken:           user.RecoveryToken,
		RecoveryTokenExpiration: user.RecoveryTokenExpiration,
		GroupID:                 user.GroupID,
		CreatedAt:               user.CreatedAt,
		UpdatedAt:               user.UpdatedAt,
		InvitedAt:               user.InvitedAt,
		ConfirmedAt:             user.ConfirmedAt,
		LastLoginAt:             user.LastLoginAt,
	}
}
