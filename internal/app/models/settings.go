package models

// AdminSettings is the section-keyed settings record of the admin dashboard
type AdminSettings struct {
	General       GeneralSettings      `json:"general"`
	Permissions   PermissionSettings   `json:"permissions"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
}

// GeneralSettings holds the public college information
type GeneralSettings struct {
	CollegeName string `json:"collegeName"`
	Website     string `json:"website,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// PermissionSettings are the default rights granted to newly invited representatives
type PermissionSettings struct {
	Events         bool `json:"events"`
	Wall           bool `json:"wall"`
	Collaborations bool `json:"collaborations"`
}

// NotificationSettings are per-role notification toggles
type NotificationSettings struct {
	EmailDigest          bool `json:"emailDigest"`
	EventReminders       bool `json:"eventReminders"`
	WallActivity         bool `json:"wallActivity"`
	CollaborationUpdates bool `json:"collaborationUpdates"`
}

// PrivacySettings are per-role privacy toggles
type PrivacySettings struct {
	PublicProfile   bool `json:"publicProfile"`
	ShowContactInfo bool `json:"showContactInfo"`
	Searchable      bool `json:"searchable"`
}

// RepSettings is the section-keyed settings record of the rep dashboard
type RepSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
}
