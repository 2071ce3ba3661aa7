package models

import (
	"time"

	"github.com/campushub/dashboard/internal/app/models/dto/enums"
)

// Event defines a campus event visible on a dashboard
type Event struct {
	ID           string            `json:"id"`
	Title        string            `json:"title" example:"Hack Night"`
	Type         string            `json:"type" example:"hackathon"`
	Date         time.Time         `json:"date"`
	Timeframe    string            `json:"timeframe" example:"18:00 - 23:00"`
	Participants int               `json:"participants"`
	Status       enums.EventStatus `json:"status" example:"upcoming"`
	Poster       string            `json:"poster,omitempty"` // Opaque image reference
}

// Collaboration defines an inter-college collaboration around an event
type Collaboration struct {
	ID       string                    `json:"id"`
	Partner  string                    `json:"partner" example:"Northside Institute"`
	Event    string                    `json:"event" example:"Joint Robotics Expo"`
	Status   enums.CollaborationStatus `json:"status" example:"proposed"`
	Timeline string                    `json:"timeline" example:"Sep 2026 - Dec 2026"`
	Contact  string                    `json:"contact,omitempty"`
	Notes    string                    `json:"notes,omitempty"`
}
