package stores

import (
	"fmt"
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

type adminFixture struct {
	store    *AdminStore
	storage  *storage.MemoryStorage
	notifier *notify.BufferNotifier
}

func newTestAdminStore(t *testing.T, initial models.AdminState) adminFixture {
	t.Helper()
	st := storage.NewMemoryStorage()
	notifier := notify.NewBufferNotifier()
	return adminFixture{
		store:    NewAdminStore(st, notifier, zerolog.Nop(), initial),
		storage:  st,
		notifier: notifier,
	}
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func pendingRepState() models.AdminState {
	return models.AdminState{
		Representatives: []models.Representative{
			{
				ID:     "rep-1",
				Name:   "Priya Nair",
				Email:  "priya@lakeside.edu",
				Role:   "Wall Moderator",
				Status: enums.RepStatusPending,
				Since:  models.SincePlaceholder,
			},
		},
		Settings: models.AdminSettings{
			Permissions: models.PermissionSettings{Events: true, Wall: true},
		},
	}
}

func TestAdminStore_CreateWallPost_IDsAreUnique(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{})

	const n = 50
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		post, err := fx.store.CreateWallPost(dto.CreateWallPostRequest{
			Title:       fmt.Sprintf("Post %d", i),
			Description: "body",
			CreatedBy:   "Admin Office",
		})
		require.NoError(t, err)
		seen[post.ID] = true
	}

	assert.Len(t, seen, n)
	assert.Len(t, fx.store.State().WallPosts, n)
}

func TestAdminStore_ApproveRepresentative(t *testing.T) {
	fx := newTestAdminStore(t, pendingRepState())

	err := fx.store.ApproveRepresentative("rep-1")
	require.NoError(t, err)

	rep := fx.store.State().Representatives[0]
	assert.Equal(t, enums.RepStatusActive, rep.Status)
	assert.NotEqual(t, models.SincePlaceholder, rep.Since)

	notifications := fx.notifier.All()
	require.Len(t, notifications, 1)
	assert.Equal(t, enums.ToneSuccess, notifications[0].Tone)
}

func TestAdminStore_ApproveRepresentative_UnknownID(t *testing.T) {
	fx := newTestAdminStore(t, pendingRepState())

	err := fx.store.ApproveRepresentative("rep-404")

	require.ErrorIs(t, err, apperrors.ErrEntityNotFound)
	assert.Empty(t, fx.notifier.All())
	assert.Equal(t, enums.RepStatusPending, fx.store.State().Representatives[0].Status)
}

func TestAdminStore_RemoveRepresentative_SoftRemoves(t *testing.T) {
	fx := newTestAdminStore(t, pendingRepState())
	require.NoError(t, fx.store.ApproveRepresentative("rep-1"))

	err := fx.store.RemoveRepresentative("rep-1")
	require.NoError(t, err)

	state := fx.store.State()
	require.Len(t, state.Representatives, 1) // never hard-deleted
	assert.Equal(t, enums.RepStatusRemoved, state.Representatives[0].Status)
	assert.Equal(t, 0, state.Derived.ActiveRepresentatives)
}

func TestAdminStore_InviteRepresentative_InheritsPermissionDefaults(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		Settings: models.AdminSettings{
			Permissions: models.PermissionSettings{Events: true, Collaborations: true},
		},
	})

	rep, err := fx.store.InviteRepresentative(dto.InviteRepresentativeRequest{
		Name:       "Dev Kapoor",
		Email:      "dev@lakeside.edu",
		Role:       "Collab Lead",
		Department: "Physics",
	})

	require.NoError(t, err)
	assert.Equal(t, enums.RepStatusPending, rep.Status)
	assert.Equal(t, models.SincePlaceholder, rep.Since)
	assert.True(t, rep.AssignedRights.Events)
	assert.False(t, rep.AssignedRights.Wall)
	assert.True(t, rep.AssignedRights.Collaborations)
}

func TestAdminStore_UpdateRepresentativeRights_PartialPatch(t *testing.T) {
	fx := newTestAdminStore(t, pendingRepState())

	err := fx.store.UpdateRepresentativeRights("rep-1", dto.RightsPatch{Wall: boolPtr(true)})
	require.NoError(t, err)

	rights := fx.store.State().Representatives[0].AssignedRights
	assert.True(t, rights.Wall)
	assert.False(t, rights.Events) // untouched
}

func TestAdminStore_ReactToWallPost_IncrementsMonotonically(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		WallPosts: []models.WallPost{
			{ID: "post-1", Title: "Tech Fest", Reactions: models.WallReactions{Likes: 3}},
		},
	})

	require.NoError(t, fx.store.ReactToWallPost("post-1", enums.ReactionLikes))
	assert.Equal(t, 4, fx.store.State().WallPosts[0].Reactions.Likes)

	// Reacting again counts again: increment, not a toggle
	require.NoError(t, fx.store.ReactToWallPost("post-1", enums.ReactionLikes))
	assert.Equal(t, 5, fx.store.State().WallPosts[0].Reactions.Likes)
}

func TestAdminStore_ReactToWallPost_UnknownKind(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		WallPosts: []models.WallPost{{ID: "post-1"}},
	})

	err := fx.store.ReactToWallPost("post-1", "applauds")

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAdminStore_AddWallComment_Appends(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		WallPosts: []models.WallPost{{ID: "post-1", Comments: []models.Comment{}}},
	})

	first, err := fx.store.AddWallComment("post-1", dto.AddCommentRequest{Author: "Aisha", Text: "Nice!"})
	require.NoError(t, err)
	second, err := fx.store.AddWallComment("post-1", dto.AddCommentRequest{Author: "Rohan", Text: "+1"})
	require.NoError(t, err)

	comments := fx.store.State().WallPosts[0].Comments
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.Equal(t, 2, fx.store.State().Derived.TotalComments)
}

func TestAdminStore_UpdateEventStatus_IsIdempotent(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		Events: []models.Event{
			{ID: "event-1", Title: "Hack Night", Status: enums.EventStatusUpcoming},
		},
	})

	require.NoError(t, fx.store.UpdateEventStatus("event-1", enums.EventStatusOngoing))
	once := *fx.store.State()

	require.NoError(t, fx.store.UpdateEventStatus("event-1", enums.EventStatusOngoing))
	twice := *fx.store.State()

	assert.Equal(t, once, twice)
}

func TestAdminStore_UpdateEventStatus_RejectsInvalidTransition(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		Events: []models.Event{
			{ID: "event-1", Title: "Career Fair", Status: enums.EventStatusCompleted},
		},
	})

	err := fx.store.UpdateEventStatus("event-1", enums.EventStatusUpcoming)

	require.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, enums.EventStatusCompleted, fx.store.State().Events[0].Status)
}

func TestAdminStore_CreateEvent_RejectsBadDate(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{})

	_, err := fx.store.CreateEvent(dto.CreateEventRequest{
		Title: "Hack Night",
		Type:  "hackathon",
		Date:  "14-02-2026",
	})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, fx.store.State().Events)
}

func TestAdminStore_UpdateEvent_PartialPatch(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		Events: []models.Event{
			{ID: "event-1", Title: "Hack Night", Type: "hackathon", Participants: 80, Status: enums.EventStatusUpcoming},
		},
	})

	err := fx.store.UpdateEvent("event-1", dto.EventPatch{
		Title: strPtr("Hack Night 2.0"),
		Date:  strPtr("2026-10-01"),
	})
	require.NoError(t, err)

	ev := fx.store.State().Events[0]
	assert.Equal(t, "Hack Night 2.0", ev.Title)
	assert.Equal(t, "hackathon", ev.Type) // untouched
	assert.Equal(t, 80, ev.Participants)  // untouched
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), ev.Date)
}

func TestAdminStore_DeleteCollaboration_RemovesExactlyOne(t *testing.T) {
	keeper := models.Collaboration{
		ID: "collab-2", Partner: "Riverdale University", Event: "Debate",
		Status: enums.CollabStatusActive, Timeline: "Oct 2026", Contact: "debate@riverdale.edu",
	}
	fx := newTestAdminStore(t, models.AdminState{
		Collaborations: []models.Collaboration{
			{ID: "collab-1", Partner: "Northside Institute", Event: "Expo", Status: enums.CollabStatusProposed},
			keeper,
		},
	})

	err := fx.store.DeleteCollaboration("collab-1")
	require.NoError(t, err)

	state := fx.store.State()
	require.Len(t, state.Collaborations, 1)
	assert.Equal(t, keeper, state.Collaborations[0])
}

func TestAdminStore_DerivedAggregatesMatchManualSums(t *testing.T) {
	initial := models.AdminState{
		WallPosts: []models.WallPost{
			{
				ID:        "post-1",
				Reactions: models.WallReactions{Likes: 12, Celebrates: 4, Curious: 2},
				Analytics: models.WallAnalytics{Views: 230},
				Comments:  []models.Comment{{ID: "c1"}, {ID: "c2"}},
			},
			{
				ID:        "post-2",
				Reactions: models.WallReactions{Likes: 5, Curious: 1},
				Analytics: models.WallAnalytics{Views: 98},
				Comments:  []models.Comment{{ID: "c3"}},
			},
		},
		Representatives: []models.Representative{
			{ID: "rep-1", Status: enums.RepStatusActive},
			{ID: "rep-2", Status: enums.RepStatusPending},
			{ID: "rep-3", Status: enums.RepStatusRemoved},
		},
	}
	fx := newTestAdminStore(t, initial)

	var wantReactions, wantComments int
	for _, post := range initial.WallPosts {
		wantReactions += post.Reactions.Likes + post.Reactions.Celebrates + post.Reactions.Curious
		wantComments += len(post.Comments)
	}

	derived := fx.store.State().Derived
	assert.Equal(t, wantReactions, derived.TotalReactions)
	assert.Equal(t, wantComments, derived.TotalComments)
	assert.Equal(t, 230+98, derived.TotalViews)
	assert.Equal(t, 1, derived.ActiveRepresentatives)
	assert.Equal(t, 1, derived.PendingRepresentatives)
}

func TestAdminStore_UpcomingEventsFilteredAndSortedAscending(t *testing.T) {
	now := time.Now()
	fx := newTestAdminStore(t, models.AdminState{
		Events: []models.Event{
			{ID: "event-1", Title: "Later", Date: now.AddDate(0, 0, 14), Status: enums.EventStatusUpcoming},
			{ID: "event-2", Title: "Done", Date: now.AddDate(0, -1, 0), Status: enums.EventStatusCompleted},
			{ID: "event-3", Title: "Sooner", Date: now.AddDate(0, 0, 7), Status: enums.EventStatusUpcoming},
		},
	})

	upcoming := fx.store.State().Derived.UpcomingEvents
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Sooner", upcoming[0].Title)
	assert.Equal(t, "Later", upcoming[1].Title)
}

func TestAdminStore_UpdateGeneralSettings_PatchTouchesOnlyNamedFields(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		Settings: models.AdminSettings{
			General: models.GeneralSettings{
				CollegeName: "Lakeside College",
				Website:     "https://lakeside.edu",
			},
		},
	})

	err := fx.store.UpdateGeneralSettings(dto.GeneralSettingsPatch{
		Website: strPtr("https://lakeside.ac"),
	})
	require.NoError(t, err)

	general := fx.store.State().Settings.General
	assert.Equal(t, "https://lakeside.ac", general.Website)
	assert.Equal(t, "Lakeside College", general.CollegeName)
}

func TestAdminStore_SubscribersNotifiedSynchronously(t *testing.T) {
	fx := newTestAdminStore(t, pendingRepState())
	before := fx.store.State()

	var got []*models.AdminState
	cancel := fx.store.Subscribe(func(s *models.AdminState) { got = append(got, s) })

	require.NoError(t, fx.store.ApproveRepresentative("rep-1"))

	require.Len(t, got, 1)
	assert.Same(t, fx.store.State(), got[0])
	assert.NotSame(t, before, got[0]) // snapshots are replaced, not mutated
	assert.Equal(t, enums.RepStatusPending, before.Representatives[0].Status)

	cancel()
	require.NoError(t, fx.store.RemoveRepresentative("rep-1"))
	assert.Len(t, got, 1)
}

func TestAdminStore_StatePersistsAcrossInstances(t *testing.T) {
	fx := newTestAdminStore(t, pendingRepState())
	require.NoError(t, fx.store.ApproveRepresentative("rep-1"))

	reopened := NewAdminStore(fx.storage, notify.NewBufferNotifier(), zerolog.Nop(), models.AdminState{})

	reps := reopened.State().Representatives
	require.Len(t, reps, 1)
	assert.Equal(t, enums.RepStatusActive, reps[0].Status)
}

func TestAdminStore_CreateWallPost_RejectsInvalidPayload(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{})

	_, err := fx.store.CreateWallPost(dto.CreateWallPostRequest{Description: "no title"})

	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, fx.store.State().WallPosts)
}

func TestAdminStore_WallPinAndMetrics(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		WallPosts: []models.WallPost{{ID: "post-1"}},
	})

	require.NoError(t, fx.store.SetWallPostPinned("post-1", true))
	require.NoError(t, fx.store.RecordWallMetric("post-1", enums.MetricViews))
	require.NoError(t, fx.store.RecordWallMetric("post-1", enums.MetricShares))

	post := fx.store.State().WallPosts[0]
	assert.True(t, post.Pinned)
	assert.Equal(t, 1, post.Analytics.Views)
	assert.Equal(t, 1, post.Analytics.Shares)
	assert.Equal(t, 0, post.Analytics.Saves)
}

func TestAdminStore_DeleteWallPost(t *testing.T) {
	fx := newTestAdminStore(t, models.AdminState{
		WallPosts: []models.WallPost{{ID: "post-1"}, {ID: "post-2"}},
	})

	require.NoError(t, fx.store.DeleteWallPost("post-1"))

	state := fx.store.State()
	require.Len(t, state.WallPosts, 1)
	assert.Equal(t, "post-2", state.WallPosts[0].ID)

	require.ErrorIs(t, fx.store.DeleteWallPost("post-1"), apperrors.ErrEntityNotFound)
}
