package models

import (
	"github.com/campushub/dashboard/internal/app/models/dto/enums"
)

// Representative defines a college representative managed from the admin dashboard
type Representative struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"name" example:"Rohan Mehta"`
	Email          string                     `json:"email" example:"rohan@college.edu"`
	Role           string                     `json:"role" example:"Event Coordinator"` // Display title, not the auth role
	Department     string                     `json:"department" example:"Computer Science"`
	Status         enums.RepresentativeStatus `json:"status" example:"pending"`
	AssignedRights RepresentativeRights       `json:"assignedRights"`
	Avatar         string                     `json:"avatar,omitempty"`
	Since          string                     `json:"since" example:"2026-08-01"` // "—" until the representative is approved
}

// RepresentativeRights are the dashboard areas a representative may manage
type RepresentativeRights struct {
	Events         bool `json:"events"`
	Wall           bool `json:"wall"`
	Collaborations bool `json:"collaborations"`
}

// SincePlaceholder is the Since value of a representative who has not been approved yet
const SincePlaceholder = "—"
