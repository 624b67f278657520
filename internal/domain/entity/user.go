package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role a user plays in the system.
type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleUser       UserRole = "USER"
	UserRoleGuest      UserRole = "GUEST"
	UserRoleModerator  UserRole = "MODERATOR"
	UserRoleMember     UserRole = "MEMBER"
	UserRoleSubscriber UserRole = "SUBSCRIBER"
)

var userRoles = []UserRole{
	UserRoleAdmin,
	UserRoleUser,
	UserRoleGuest,
	UserRoleModerator,
	UserRoleMember,
	UserRoleSubscriber,
}

// ParseUserRole resolves a free-text role, ignoring case and surrounding spaces.
func ParseUserRole(raw string) (UserRole, error) {
	return parseEnum(raw, userRoles, "role", "UserRoleType")
}

// User represents a registered user of the Budget Control system.
// A zero ID means the user has not been persisted yet.
type User struct {
	ID                      uuid.UUID
	FirstName               string
	LastName                string
	BirthDate               *time.Time
	CPF                     string
	Email                   string
	Phone                   string
	PasswordHash            string
	Authenticated           bool
	Role                    UserRole
	ConfirmationToken       string
	RecoveryToken           string
	RecoveryTokenExpiration *time.Time
	GroupID                 *uuid.UUID
	CreatedAt               time.Time
	UpdatedAt               time.Time
	InvitedAt               *time.Time
	ConfirmedAt             *time.Time
	LastLoginAt             *time.Time
}

// NewUser creates a new, not yet persisted User.
func NewUser(firstName, lastName, cpf, email string) *User {
	now := time.Now().UTC()
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Email:     email,
		Role:      UserRoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RecordLogin marks the user as authenticated at the given instant.
func (u *User) RecordLogin(at time.Time) {
	u.Authenticated = true
	u.LastLoginAt = &at
	u.UpdatedAt = at
}
