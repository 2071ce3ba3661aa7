package dto

import (
	"github.com/campushub/dashboard/internal/app/models"
	"github.com/campushub/dashboard/internal/app/models/dto/enums"
)

// SignUpRequest represents a new account registration
type SignUpRequest struct {
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=8"`
	Name     string            `json:"name" validate:"required,min=2,max=100"`
	Role     enums.RoleType    `json:"role" validate:"required,oneof=student college_admin college_rep"`
	Profile  models.UserProfile `json:"profile"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SessionResponse represents a successful sign-in or sign-up
type SessionResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
