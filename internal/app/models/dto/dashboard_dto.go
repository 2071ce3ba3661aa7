package dto

// Requests and patches accepted by the dashboard store mutators. Patch structs
// use pointer fields: nil means "leave unchanged".

// InviteRepresentativeRequest invites a new representative in pending state
type InviteRepresentativeRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required"` // Display title, e.g. "Event Coordinator"
	Department string `json:"department" validate:"required"`
	Avatar     string `json:"avatar,omitempty"`
}

// RightsPatch updates a representative's assigned rights
type RightsPatch struct {
	Events         *bool `json:"events,omitempty"`
	Wall           *bool `json:"wall,omitempty"`
	Collaborations *bool `json:"collaborations,omitempty"`
}

// CreateWallPostRequest creates a new wall post
type CreateWallPostRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image,omitempty"`
	CreatedBy   string `json:"createdBy" validate:"required"`
}

// AddCommentRequest appends a comment to a wall post
type AddCommentRequest struct {
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required,max=1000"`
}

// CreateEventRequest creates a new event in upcoming state
type CreateEventRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=200"`
	Type         string `json:"type" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Timeframe    string `json:"timeframe,omitempty"`
	Participants int    `json:"participants" validate:"min=0"`
	Poster       string `json:"poster,omitempty"`
}

// EventPatch updates an event's editable fields. Status changes go through
// UpdateEventStatus so they stay transition-checked.
type EventPatch struct {
	Title        *string `json:"title,omitempty"`
	Type         *string `json:"type,omitempty"`
	Date         *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Timeframe    *string `json:"timeframe,omitempty"`
	Participants *int    `json:"participants,omitempty"`
	Poster       *string `json:"poster,omitempty"`
}

// CreateCollaborationRequest creates a new collaboration in proposed state
type CreateCollaborationRequest struct {
	Partner  string `json:"partner" validate:"required,min=2,max=200"`
	Event    string `json:"event" validate:"required"`
	Timeline string `json:"timeline,omitempty"`
	Contact  string `json:"contact,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// GeneralSettingsPatch updates the general settings section
type GeneralSettingsPatch struct {
	CollegeName *string `json:"collegeName,omitempty"`
	Website     *string `json:"website,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

// PermissionSettingsPatch updates the default rights for new representatives
type PermissionSettingsPatch struct {
	Events         *bool `json:"events,omitempty"`
	Wall           *bool `json:"wall,omitempty"`
	Collaborations *bool `json:"collaborations,omitempty"`
}

// NotificationSettingsPatch updates the notification toggles section
type NotificationSettingsPatch struct {
	EmailDigest          *bool `json:"emailDigest,omitempty"`
	EventReminders       *bool `json:"eventReminders,omitempty"`
	WallActivity         *bool `json:"wallActivity,omitempty"`
	CollaborationUpdates *bool `json:"collaborationUpdates,omitempty"`
}

// PrivacySettingsPatch updates the privacy toggles section
type PrivacySettingsPatch struct {
	PublicProfile   *bool `json:"publicProfile,omitempty"`
	ShowContactInfo *bool `json:"showContactInfo,omitempty"`
	Searchable      *bool `json:"searchable,omitempty"`
}

// RepProfilePatch updates the rep dashboard profile
type RepProfilePatch struct {
	Name       *string `json:"name,omitempty"`
	Title      *string `json:"title,omitempty"`
	Department *string `json:"department,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar     *string `json:"avatar,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}
