package models

import (
	"time"

	"github.com/campushub/dashboard/internal/app/models/dto/enums"
)

// User defines an account in the mock credential table
type User struct {
	ID             string            `json:"id" example:"user-1756300000000-1a2b3c"`       // Unique identifier for the user
	Email          string            `json:"email" example:"student@test.com"`             // User's email address, unique case-insensitively
	Password       string            `json:"password,omitempty"`                           // bcrypt hash; persisted with the table, never shown
	Name           string            `json:"name" example:"Aisha Verma"`                   // Display name
	Role           enums.RoleType    `json:"role" example:"student"`                       // student, college_admin or college_rep
	ProfilePicture string            `json:"profilePicture,omitempty"`                     // Opaque image reference
	Profile        UserProfile       `json:"profile"`                                      // Role-independent profile details
	Metadata       map[string]string `json:"metadata,omitempty"`                           // Free-form key/value pairs attached at sign-up
	RoleDetails    map[string]string `json:"roleDetails,omitempty"`                        // Role-specific key/value pairs
	CreatedAt      time.Time         `json:"createdAt" example:"2026-01-01T10:00:00Z"`     // Timestamp when the account was created
}

// UserProfile holds the role-independent part of a user record
type UserProfile struct {
	College    string `json:"college,omitempty"`
	Department string `json:"department,omitempty"`
	Year       string `json:"year,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// Public returns a copy of u safe to hand to consumers (password hash cleared)
func (u User) Public() User {
	u.Password = ""
	return u
}
