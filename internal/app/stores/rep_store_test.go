package stores

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/dashboard/internal/app/models"
	"github.com/campushub/dashboard/internal/app/models/dto"
	"github.com/campushub/dashboard/internal/app/models/dto/enums"
	"github.com/campushub/dashboard/internal/app/notify"
	"github.com/campushub/dashboard/internal/pkg/apperrors"
	"github.com/campushub/dashboard/internal/storage"
)

type repFixture struct {
	store    *RepStore
	storage  *storage.MemoryStorage
	notifier *notify.BufferNotifier
}

func newTestRepStore(t *testing.T, initial models.RepState) repFixture {
	t.Helper()
	st := storage.NewMemoryStorage()
	notifier := notify.NewBufferNotifier()
	return repFixture{
		store:    NewRepStore(st, notifier, zerolog.Nop(), initial),
		storage:  st,
		notifier: notifier,
	}
}

func TestRepStore_UpdateProfile_PartialPatch(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{
		Profile: models.RepProfile{
			Name:       "Rohan Mehta",
			Title:      "Event Coordinator",
			Department: "Electronics",
		},
	})

	err := fx.store.UpdateProfile(dto.RepProfilePatch{Title: strPtr("Senior Coordinator")})
	require.NoError(t, err)

	profile := fx.store.State().Profile
	assert.Equal(t, "Senior Coordinator", profile.Title)
	assert.Equal(t, "Rohan Mehta", profile.Name)
	assert.Equal(t, "Electronics", profile.Department)
}

func TestRepStore_UpdateProfile_RejectsBadEmail(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{})

	err := fx.store.UpdateProfile(dto.RepProfilePatch{Email: strPtr("not-an-email")})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRepStore_ProposeCollaboration_StartsProposed(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{})

	collab, err := fx.store.ProposeCollaboration(dto.CreateCollaborationRequest{
		Partner:  "Riverdale University",
		Event:    "Inter-college Debate",
		Timeline: "Oct 2026",
	})

	require.NoError(t, err)
	assert.Equal(t, enums.CollabStatusProposed, collab.Status)
	assert.NotEmpty(t, collab.ID)

	notifications := fx.notifier.All()
	require.Len(t, notifications, 1)
	assert.Equal(t, enums.ToneSuccess, notifications[0].Tone)
}

func TestRepStore_CollaborationLifecycle(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{})
	collab, err := fx.store.ProposeCollaboration(dto.CreateCollaborationRequest{
		Partner: "Northside Institute",
		Event:   "Joint Robotics Expo",
	})
	require.NoError(t, err)

	require.NoError(t, fx.store.UpdateCollaborationStatus(collab.ID, enums.CollabStatusActive))
	assert.Equal(t, 1, fx.store.State().Derived.ActiveCollaborations)

	require.NoError(t, fx.store.UpdateCollaborationStatus(collab.ID, enums.CollabStatusCompleted))
	assert.Equal(t, 0, fx.store.State().Derived.ActiveCollaborations)

	// Completed is terminal
	err = fx.store.UpdateCollaborationStatus(collab.ID, enums.CollabStatusProposed)
	require.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRepStore_DeleteCollaboration_RemovesExactlyOne(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{
		Collaborations: []models.Collaboration{
			{ID: "collab-1", Partner: "Northside Institute"},
			{ID: "collab-2", Partner: "Riverdale University"},
		},
	})

	require.NoError(t, fx.store.DeleteCollaboration("collab-2"))

	state := fx.store.State()
	require.Len(t, state.Collaborations, 1)
	assert.Equal(t, "collab-1", state.Collaborations[0].ID)
}

func TestRepStore_EventsSortedInDerivedUpcoming(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{})

	_, err := fx.store.CreateEvent(dto.CreateEventRequest{
		Title: "Later Workshop", Type: "workshop", Date: "2026-11-20",
	})
	require.NoError(t, err)
	_, err = fx.store.CreateEvent(dto.CreateEventRequest{
		Title: "Sooner Workshop", Type: "workshop", Date: "2026-09-05",
	})
	require.NoError(t, err)

	upcoming := fx.store.State().Derived.UpcomingEvents
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Sooner Workshop", upcoming[0].Title)
	assert.Equal(t, "Later Workshop", upcoming[1].Title)
}

func TestRepStore_EventStatusTransitions(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{
		Events: []models.Event{
			{ID: "event-1", Title: "Workshop", Date: time.Now(), Status: enums.EventStatusUpcoming},
		},
	})

	require.NoError(t, fx.store.UpdateEventStatus("event-1", enums.EventStatusOngoing))
	require.NoError(t, fx.store.UpdateEventStatus("event-1", enums.EventStatusCompleted))

	err := fx.store.UpdateEventStatus("event-1", enums.EventStatusOngoing)
	require.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRepStore_WallRoundTrip(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{})

	post, err := fx.store.CreateWallPost(dto.CreateWallPostRequest{
		Title:       "Workshop seats filling fast",
		Description: "Only 12 left.",
		CreatedBy:   "Rohan Mehta",
	})
	require.NoError(t, err)

	require.NoError(t, fx.store.ReactToWallPost(post.ID, enums.ReactionCelebrates))
	_, err = fx.store.AddWallComment(post.ID, dto.AddCommentRequest{Author: "Aisha", Text: "See you there"})
	require.NoError(t, err)

	derived := fx.store.State().Derived
	assert.Equal(t, 1, derived.TotalReactions)
	assert.Equal(t, 1, derived.TotalComments)
}

func TestRepStore_SettingsPatches(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{
		Settings: models.RepSettings{
			Notifications: models.NotificationSettings{EventReminders: true},
		},
	})

	require.NoError(t, fx.store.UpdateNotificationSettings(dto.NotificationSettingsPatch{
		WallActivity: boolPtr(true),
	}))
	require.NoError(t, fx.store.UpdatePrivacySettings(dto.PrivacySettingsPatch{
		PublicProfile: boolPtr(true),
	}))

	settings := fx.store.State().Settings
	assert.True(t, settings.Notifications.WallActivity)
	assert.True(t, settings.Notifications.EventReminders) // untouched
	assert.True(t, settings.Privacy.PublicProfile)
}

func TestRepStore_StatePersistsAcrossInstances(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{})
	_, err := fx.store.CreateEvent(dto.CreateEventRequest{
		Title: "Persisted Workshop", Type: "workshop", Date: "2026-09-05",
	})
	require.NoError(t, err)

	reopened := NewRepStore(fx.storage, notify.NewBufferNotifier(), zerolog.Nop(), models.RepState{})

	events := reopened.State().Events
	require.Len(t, events, 1)
	assert.Equal(t, "Persisted Workshop", events[0].Title)
}

func TestRepStore_SubscribersSeeEachReplacement(t *testing.T) {
	fx := newTestRepStore(t, models.RepState{})

	var count int
	cancel := fx.store.Subscribe(func(*models.RepState) { count++ })
	defer cancel()

	_, err := fx.store.CreateEvent(dto.CreateEventRequest{
		Title: "Workshop", Type: "workshop", Date: "2026-09-05",
	})
	require.NoError(t, err)
	require.NoError(t, fx.store.UpdateProfile(dto.RepProfilePatch{Bio: strPtr("Builder")}))

	assert.Equal(t, 2, count)
}
