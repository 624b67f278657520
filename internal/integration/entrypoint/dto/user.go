package dto

import (
	"time"

	"github.com/budget-control/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for user registration.
type CreateUserRequest struct {
	FirstName string  `json:"firstName" binding:"max=50"`
	LastName  string  `json:"lastName" binding:"max=50"`
	BirthDate *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	CPF       string  `json:"cpf" binding:"omitempty,cpf"`
	Email     string  `json:"email" binding:"omitempty,email,max=100"`
	Phone     string  `json:"phone" binding:"max=20"`
	Password  string  `json:"password" binding:"required,min=6,max=72"`
	Role      string  `json:"role"`
	GroupID   *string `json:"groupId"`
}

// ParsedBirthDate returns the birth date, or nil when absent.
func (r CreateUserRequest) ParsedBirthDate() *time.Time {
	return parseDate(r.BirthDate)
}

// UpdateUserRequest represents the request body for a partial profile update.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50"`
	GroupID   *string `json:"groupId"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses. The password only ever leaves as its hash.
type UserResponse struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	BirthDate         *string    `json:"birthDate"`
	CPF               string     `json:"cpf"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	EncryptedPassword string     `json:"encryptedPassword"`
	Authenticated     bool       `json:"userAuthenticated"`
	Role              string     `json:"role"`
	GroupID           *string    `json:"groupId"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	LastLoginAt       *time.Time `json:"lastLoginAt"`
}

// ToUserResponse converts a domain User to a UserResponse.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		BirthDate:         formatDate(user.BirthDate),
		CPF:               user.CPF,
		Email:             user.Email,
		Phone:             user.Phone,
		EncryptedPassword: user.PasswordHash,
		Authenticated:     user.Authenticated,
		Role:              string(user.Role),
		GroupID:           formatOptionalID(user.GroupID),
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
		LastLoginAt:       user.LastLoginAt,
	}
}

// ToUserResponses converts a list of domain users.
func ToUserResponses(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
