package dto

import (
	"time"

	"github.com/rajib3777/academia/internal/entity"
)

type RegisterRequest struct {
	FullName     string `json:"full_name" validate:"required,max=255"`
	MobileNumber string `json:"mobile_number" validate:"required,max=15"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password" validate:"required,min=8"`
	// Comma-separated role names, e.g. "teacher,staff".
	Roles string `json:"roles" validate:"required"`
}

type LoginRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required,max=15"`
	Password     string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	UserID  string   `json:"user_id"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Roles   []string `json:"roles"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	MobileNumber string    `json:"mobile_number"`
	Email        *string   `json:"email,omitempty"`
	Roles        []string  `json:"roles"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role.Name))
	}
	return UserResponse{
		ID:           user.ID.String(),
		FullName:     user.FullName,
		MobileNumber: user.MobileNumber,
		Email:        user.Email,
		Roles:        roles,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	}
}
