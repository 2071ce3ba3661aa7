// Package seed provides the default user table and demo dashboard data used
// when a fresh installation has nothing persisted yet.
package seed

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/dashboard/internal/app/models"
	"github.com/campushub/dashboard/internal/app/models/dto/enums"
	"github.com/campushub/dashboard/internal/pkg/auth"
)

// Default account credentials. These exist so a demo installation can be
// signed into immediately; they are replaced the moment real accounts exist.
const (
	StudentEmail    = "student@test.com"
	StudentPassword = "Student@123"
	AdminEmail      = "admin@test.com"
	AdminPassword   = "Admin@123"
	RepEmail        = "rep@test.com"
	RepPassword     = "Rep@123"
)

// DefaultUsers builds the seeded user table with hashed passwords
func DefaultUsers(lgr zerolog.Logger) []models.User {
	seedTime := time.Now()

	type account struct {
		email    string
		password string
		name     string
		role     enums.RoleType
		profile  models.UserProfile
	}
	accounts := []account{
		{StudentEmail, StudentPassword, "Aisha Verma", enums.RoleStudent,
			models.UserProfile{College: "Lakeside College", Department: "Computer Science", Year: "3"}},
		{AdminEmail, AdminPassword, "Lakeside Admin Office", enums.RoleCollegeAdmin,
			models.UserProfile{College: "Lakeside College"}},
		{RepEmail, RepPassword, "Rohan Mehta", enums.RoleCollegeRep,
			models.UserProfile{College: "Lakeside College", Department: "Electronics"}},
	}

	users := make([]models.User, 0, len(accounts))
	for i, acc := range accounts {
		hashed, err := auth.HashPassword(acc.password)
		if err != nil {
			lgr.Error().Err(err).Str("email", acc.email).Msg("failed to hash seed password, skipping account")
			continue
		}
		users = append(users, models.User{
			ID:        seededID("user", i),
			Email:     acc.email,
			Password:  hashed,
			Name:      acc.name,
			Role:      acc.role,
			Profile:   acc.profile,
			CreatedAt: seedTime,
		})
	}
	return users
}

// DefaultAdminSettings returns the settings a fresh admin dashboard starts with
func DefaultAdminSettings() models.AdminSettings {
	return models.AdminSettings{
		General: models.GeneralSettings{
			CollegeName: "Lakeside College",
			Website:     "https://lakeside.edu",
			Description: "A campus that builds things together.",
		},
		Permissions: models.PermissionSettings{
			Events: true,
			Wall:   true,
		},
		Notifications: models.NotificationSettings{
			EmailDigest:          true,
			EventReminders:       true,
			WallActivity:         true,
			CollaborationUpdates: true,
		},
		Privacy: models.PrivacySettings{
			PublicProfile: true,
			Searchable:    true,
		},
	}
}

// DefaultAdminState builds the demo admin dashboard snapshot
func DefaultAdminState() models.AdminState {
	now := time.Now()

	return models.AdminState{
		Profile: models.CollegeProfile{
			Name:        "Lakeside College",
			Website:     "https://lakeside.edu",
			Email:       "office@lakeside.edu",
			Address:     "14 Lakeside Road",
			Description: "A campus that builds things together.",
		},
		Representatives: []models.Representative{
			{
				ID: seededID("rep", 0), Name: "Rohan Mehta", Email: RepEmail,
				Role: "Event Coordinator", Department: "Electronics",
				Status:         enums.RepStatusActive,
				AssignedRights: models.RepresentativeRights{Events: true, Wall: true},
				Since:          now.AddDate(0, -6, 0).Format("2006-01-02"),
			},
			{
				ID: seededID("rep", 1), Name: "Priya Nair", Email: "priya@lakeside.edu",
				Role: "Wall Moderator", Department: "Design",
				Status:         enums.RepStatusPending,
				AssignedRights: models.RepresentativeRights{Wall: true},
				Since:          models.SincePlaceholder,
			},
		},
		WallPosts: []models.WallPost{
			{
				ID:          seededID("post", 0),
				Title:       "Tech Fest 2026 announced",
				Description: "Registrations open next week. Teams of up to four.",
				CreatedAt:   now.AddDate(0, 0, -3),
				CreatedBy:   "Admin Office",
				Reactions:   models.WallReactions{Likes: 12, Celebrates: 4, Curious: 2},
				Analytics:   models.WallAnalytics{Views: 230, Saves: 18, Shares: 7},
				Comments: []models.Comment{
					{ID: seededID("comment", 0), Author: "Aisha Verma", Text: "Finally!", CreatedAt: now.AddDate(0, 0, -2)},
				},
				Pinned: true,
			},
			{
				ID:          seededID("post", 1),
				Title:       "Library hours extended",
				Description: "Open until midnight during exam weeks.",
				CreatedAt:   now.AddDate(0, 0, -1),
				CreatedBy:   "Admin Office",
				Reactions:   models.WallReactions{Likes: 5},
				Analytics:   models.WallAnalytics{Views: 98, Saves: 3},
				Comments:    []models.Comment{},
			},
		},
		Events: []models.Event{
			{
				ID: seededID("event", 0), Title: "Hack Night", Type: "hackathon",
				Date: now.AddDate(0, 0, 14), Timeframe: "18:00 - 23:00",
				Participants: 80, Status: enums.EventStatusUpcoming,
			},
			{
				ID: seededID("event", 1), Title: "Spring Orientation", Type: "orientation",
				Date: now.AddDate(0, 0, 7), Timeframe: "10:00 - 13:00",
				Participants: 200, Status: enums.EventStatusUpcoming,
			},
			{
				ID: seededID("event", 2), Title: "Winter Career Fair", Type: "fair",
				Date: now.AddDate(0, -2, 0), Participants: 340,
				Status: enums.EventStatusCompleted,
			},
		},
		Collaborations: []models.Collaboration{
			{
				ID: seededID("collab", 0), Partner: "Northside Institute",
				Event: "Joint Robotics Expo", Status: enums.CollabStatusActive,
				Timeline: "Jun 2026 - Nov 2026", Contact: "liaison@northside.edu",
			},
			{
				ID: seededID("collab", 1), Partner: "Riverdale University",
				Event: "Inter-college Debate", Status: enums.CollabStatusProposed,
				Timeline: "Oct 2026",
			},
		},
		Settings: DefaultAdminSettings(),
	}
}

// DefaultRepState builds the demo rep dashboard snapshot
func DefaultRepState() models.RepState {
	now := time.Now()

	return models.RepState{
		Profile: models.RepProfile{
			Name:       "Rohan Mehta",
			Title:      "Event Coordinator",
			Department: "Electronics",
			Email:      RepEmail,
		},
		Events: []models.Event{
			{
				ID: seededID("revent", 0), Title: "Circuit Design Workshop", Type: "workshop",
				Date: now.AddDate(0, 0, 10), Timeframe: "14:00 - 17:00",
				Participants: 40, Status: enums.EventStatusUpcoming,
			},
		},
		Collaborations: []models.Collaboration{
			{
				ID: seededID("rcollab", 0), Partner: "Northside Institute",
				Event: "Joint Robotics Expo", Status: enums.CollabStatusActive,
				Timeline: "Jun 2026 - Nov 2026",
			},
		},
		WallPosts: []models.WallPost{
			{
				ID:          seededID("rpost", 0),
				Title:       "Workshop seats filling fast",
				Description: "Only 12 seats left for the circuit design workshop.",
				CreatedAt:   now.AddDate(0, 0, -1),
				CreatedBy:   "Rohan Mehta",
				Comments:    []models.Comment{},
			},
		},
		Settings: models.RepSettings{
			Notifications: models.NotificationSettings{
				EventReminders:       true,
				CollaborationUpdates: true,
			},
			Privacy: models.PrivacySettings{PublicProfile: true},
		},
	}
}

// EmptyAdminState builds a blank admin dashboard with default settings only
func EmptyAdminState() models.AdminState {
	return models.AdminState{Settings: DefaultAdminSettings()}
}

// EmptyRepState builds a blank rep dashboard
func EmptyRepState() models.RepState {
	return models.RepState{}
}

// seededID produces stable ids for seeded entities so reseeding an empty
// installation does not multiply demo records.
func seededID(prefix string, n int) string {
	return fmt.Sprintf("%s-seed-%d", prefix, n)
}
