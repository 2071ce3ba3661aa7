package stores

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/dashboard/internal/app/models"
	"github.com/campushub/dashboard/internal/app/models/dto"
	"github.com/campushub/dashboard/internal/app/models/dto/enums"
	"github.com/campushub/dashboard/internal/app/notify"
	"github.com/campushub/dashboard/internal/pkg/apperrors"
	"github.com/campushub/dashboard/internal/pkg/validation"
	"github.com/campushub/dashboard/internal/storage"
)

// AdminStore owns the college admin dashboard state: representatives, wall
// posts, events, collaborations and settings, plus the derived aggregates.
type AdminStore struct {
	mu    sync.Mutex
	state *models.AdminState

	storage  storage.Storage
	notifier notify.Notifier
	logger   zerolog.Logger

	subscribers map[int]func(*models.AdminState)
	nextSubID   int
}

// NewAdminStore builds an AdminStore. The snapshot is loaded from storage;
// initial is the fallback when nothing usable is stored.
func NewAdminStore(st storage.Storage, notifier notify.Notifier, logger zerolog.Logger, initial models.AdminState) *AdminStore {
	state := initial
	st.Load(adminStateKey, &state)
	state.Recompute()

	return &AdminStore{
		state:       &state,
		storage:     st,
		notifier:    notifier,
		logger:      logger,
		subscribers: make(map[int]func(*models.AdminState)),
	}
}

// State returns the current snapshot. Snapshots are replaced, never mutated,
// so two calls return the same pointer until a mutator runs.
func (s *AdminStore) State() *models.AdminState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called synchronously with every new snapshot.
// The returned function cancels the subscription.
func (s *AdminStore) Subscribe(fn func(*models.AdminState)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// mutate runs fn against a clone of the current state and, when fn succeeds,
// replaces the snapshot, persists it and notifies subscribers.
func (s *AdminStore) mutate(fn func(next *models.AdminState) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	next.Recompute()
	snapshot := &next
	s.state = snapshot
	s.storage.Save(adminStateKey, snapshot)

	subs := make([]func(*models.AdminState), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
	return nil
}

// --- Representatives ---

// InviteRepresentative adds a new representative in pending state. Rights
// default to the permission settings section.
func (s *AdminStore) InviteRepresentative(req dto.InviteRepresentativeRequest) (models.Representative, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return models.Representative{}, err
	}

	var rep models.Representative
	err := s.mutate(func(next *models.AdminState) error {
		rep = models.Representative{
			ID:         NewEntityID("rep"),
			Name:       req.Name,
			Email:      req.Email,
			Role:       req.Role,
			Department: req.Department,
			Status:     enums.RepStatusPending,
			AssignedRights: models.RepresentativeRights{
				Events:         next.Settings.Permissions.Events,
				Wall:           next.Settings.Permissions.Wall,
				Collaborations: next.Settings.Permissions.Collaborations,
			},
			Avatar: req.Avatar,
			Since:  models.SincePlaceholder,
		}
		next.Representatives = append(next.Representatives, rep)
		return nil
	})
	if err != nil {
		return models.Representative{}, err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneInfo,
		Message:   fmt.Sprintf("Invitation sent to %s", rep.Name),
		CreatedAt: time.Now(),
	})
	return rep, nil
}

// ApproveRepresentative moves a pending representative to active and stamps
// the membership date.
func (s *AdminStore) ApproveRepresentative(id string) error {
	var name string
	err := s.mutate(func(next *models.AdminState) error {
		i := repIndex(next.Representatives, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("representative", id)
		}
		status, err := enums.TransitionRepresentativeStatus(next.Representatives[i].Status, enums.RepStatusActive)
		if err != nil {
			return err
		}
		next.Representatives[i].Status = status
		if next.Representatives[i].Since == models.SincePlaceholder {
			next.Representatives[i].Since = time.Now().Format("2006-01-02")
		}
		name = next.Representatives[i].Name
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneSuccess,
		Message:   fmt.Sprintf("%s is now an active representative", name),
		CreatedAt: time.Now(),
	})
	return nil
}

// RemoveRepresentative soft-removes a representative. The record stays in the
// collection in removed state.
func (s *AdminStore) RemoveRepresentative(id string) error {
	var name string
	err := s.mutate(func(next *models.AdminState) error {
		i := repIndex(next.Representatives, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("representative", id)
		}
		status, err := enums.TransitionRepresentativeStatus(next.Representatives[i].Status, enums.RepStatusRemoved)
		if err != nil {
			return err
		}
		next.Representatives[i].Status = status
		name = next.Representatives[i].Name
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneInfo,
		Message:   fmt.Sprintf("%s has been removed", name),
		CreatedAt: time.Now(),
	})
	return nil
}

// PromoteRepresentative changes a representative's display role
func (s *AdminStore) PromoteRepresentative(id, role string) error {
	if role == "" {
		return apperrors.NewValidationError(map[string]interface{}{"role": "role is required"})
	}

	var name string
	err := s.mutate(func(next *models.AdminState) error {
		i := repIndex(next.Representatives, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("representative", id)
		}
		next.Representatives[i].Role = role
		name = next.Representatives[i].Name
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneSuccess,
		Message:   fmt.Sprintf("%s promoted to %s", name, role),
		CreatedAt: time.Now(),
	})
	return nil
}

// UpdateRepresentativeRights applies a partial rights update
func (s *AdminStore) UpdateRepresentativeRights(id string, patch dto.RightsPatch) error {
	return s.mutate(func(next *models.AdminState) error {
		i := repIndex(next.Representatives, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("representative", id)
		}
		rights := &next.Representatives[i].AssignedRights
		if patch.Events != nil {
			rights.Events = *patch.Events
		}
		if patch.Wall != nil {
			rights.Wall = *patch.Wall
		}
		if patch.Collaborations != nil {
			rights.Collaborations = *patch.Collaborations
		}
		return nil
	})
}

// --- Wall ---

// CreateWallPost publishes a new post at the top of the wall
func (s *AdminStore) CreateWallPost(req dto.CreateWallPostRequest) (models.WallPost, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return models.WallPost{}, err
	}

	post := models.WallPost{
		ID:          NewEntityID("post"),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   time.Now(),
		CreatedBy:   req.CreatedBy,
		Comments:    []models.Comment{},
	}
	err := s.mutate(func(next *models.AdminState) error {
		next.WallPosts = append([]models.WallPost{post}, next.WallPosts...)
		return nil
	})
	if err != nil {
		return models.WallPost{}, err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneSuccess,
		Message:   fmt.Sprintf("Post %q published", post.Title),
		CreatedAt: time.Now(),
	})
	return post, nil
}

// ReactToWallPost increments one reaction counter on a post. This is an
// unconditional monotonic increment: there is no per-user tracking, so
// reacting twice counts twice.
func (s *AdminStore) ReactToWallPost(postID string, kind enums.ReactionKind) error {
	if !kind.Valid() {
		return apperrors.NewValidationError(map[string]interface{}{"kind": "unknown reaction kind"})
	}
	return s.mutate(func(next *models.AdminState) error {
		i := postIndex(next.WallPosts, postID)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("wall post", postID)
		}
		next.WallPosts[i].Reactions = next.WallPosts[i].Reactions.Increment(kind)
		return nil
	})
}

// AddWallComment appends a comment to a post. Comments are never edited.
func (s *AdminStore) AddWallComment(postID string, req dto.AddCommentRequest) (models.Comment, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        NewEntityID("comment"),
		Author:    req.Author,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	err := s.mutate(func(next *models.AdminState) error {
		i := postIndex(next.WallPosts, postID)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("wall post", postID)
		}
		next.WallPosts[i].Comments = append(next.WallPosts[i].Comments, comment)
		return nil
	})
	if err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// SetWallPostPinned pins or unpins a post
func (s *AdminStore) SetWallPostPinned(postID string, pinned bool) error {
	return s.mutate(func(next *models.AdminState) error {
		i := postIndex(next.WallPosts, postID)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("wall post", postID)
		}
		next.WallPosts[i].Pinned = pinned
		return nil
	})
}

// RecordWallMetric increments one analytics counter on a post
func (s *AdminStore) RecordWallMetric(postID string, metric enums.WallMetric) error {
	if !metric.Valid() {
		return apperrors.NewValidationError(map[string]interface{}{"metric": "unknown wall metric"})
	}
	return s.mutate(func(next *models.AdminState) error {
		i := postIndex(next.WallPosts, postID)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("wall post", postID)
		}
		next.WallPosts[i].Analytics = next.WallPosts[i].Analytics.Increment(metric)
		return nil
	})
}

// DeleteWallPost removes a post from the wall
func (s *AdminStore) DeleteWallPost(id string) error {
	err := s.mutate(func(next *models.AdminState) error {
		i := postIndex(next.WallPosts, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("wall post", id)
		}
		next.WallPosts = append(next.WallPosts[:i], next.WallPosts[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneInfo,
		Message:   "Post deleted",
		CreatedAt: time.Now(),
	})
	return nil
}

// --- Events ---

// CreateEvent adds a new event in upcoming state
func (s *AdminStore) CreateEvent(req dto.CreateEventRequest) (models.Event, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return models.Event{}, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return models.Event{}, apperrors.NewValidationError(map[string]interface{}{"date": err.Error()})
	}

	event := models.Event{
		ID:           NewEntityID("event"),
		Title:        req.Title,
		Type:         req.Type,
		Date:         date,
		Timeframe:    req.Timeframe,
		Participants: req.Participants,
		Status:       enums.EventStatusUpcoming,
		Poster:       req.Poster,
	}
	if err := s.mutate(func(next *models.AdminState) error {
		next.Events = append(next.Events, event)
		return nil
	}); err != nil {
		return models.Event{}, err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneSuccess,
		Message:   fmt.Sprintf("Event %q created", event.Title),
		CreatedAt: time.Now(),
	})
	return event, nil
}

// UpdateEvent applies a partial update to an event's editable fields
func (s *AdminStore) UpdateEvent(id string, patch dto.EventPatch) error {
	if err := validation.ValidateStruct(patch); err != nil {
		return err
	}
	return s.mutate(func(next *models.AdminState) error {
		i := eventIndex(next.Events, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("event", id)
		}
		ev := &next.Events[i]
		if patch.Title != nil {
			ev.Title = *patch.Title
		}
		if patch.Type != nil {
			ev.Type = *patch.Type
		}
		if patch.Date != nil {
			date, err := time.Parse("2006-01-02", *patch.Date)
			if err != nil {
				return apperrors.NewValidationError(map[string]interface{}{"date": err.Error()})
			}
			ev.Date = date
		}
		if patch.Timeframe != nil {
			ev.Timeframe = *patch.Timeframe
		}
		if patch.Participants != nil {
			ev.Participants = *patch.Participants
		}
		if patch.Poster != nil {
			ev.Poster = *patch.Poster
		}
		return nil
	})
}

// UpdateEventStatus moves an event along its lifecycle. Setting the current
// status again is a valid no-op.
func (s *AdminStore) UpdateEventStatus(id string, status enums.EventStatus) error {
	return s.mutate(func(next *models.AdminState) error {
		i := eventIndex(next.Events, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("event", id)
		}
		updated, err := enums.TransitionEventStatus(next.Events[i].Status, status)
		if err != nil {
			return err
		}
		next.Events[i].Status = updated
		return nil
	})
}

// DeleteEvent removes an event
func (s *AdminStore) DeleteEvent(id string) error {
	return s.mutate(func(next *models.AdminState) error {
		i := eventIndex(next.Events, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("event", id)
		}
		next.Events = append(next.Events[:i], next.Events[i+1:]...)
		return nil
	})
}

// --- Collaborations ---

// CreateCollaboration adds a new collaboration in proposed state
func (s *AdminStore) CreateCollaboration(req dto.CreateCollaborationRequest) (models.Collaboration, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return models.Collaboration{}, err
	}

	collab := models.Collaboration{
		ID:       NewEntityID("collab"),
		Partner:  req.Partner,
		Event:    req.Event,
		Status:   enums.CollabStatusProposed,
		Timeline: req.Timeline,
		Contact:  req.Contact,
		Notes:    req.Notes,
	}
	if err := s.mutate(func(next *models.AdminState) error {
		next.Collaborations = append(next.Collaborations, collab)
		return nil
	}); err != nil {
		return models.Collaboration{}, err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneSuccess,
		Message:   fmt.Sprintf("Collaboration with %s proposed", collab.Partner),
		CreatedAt: time.Now(),
	})
	return collab, nil
}

// UpdateCollaborationStatus moves a collaboration along its lifecycle
func (s *AdminStore) UpdateCollaborationStatus(id string, status enums.CollaborationStatus) error {
	return s.mutate(func(next *models.AdminState) error {
		i := collabIndex(next.Collaborations, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("collaboration", id)
		}
		updated, err := enums.TransitionCollaborationStatus(next.Collaborations[i].Status, status)
		if err != nil {
			return err
		}
		next.Collaborations[i].Status = updated
		return nil
	})
}

// DeleteCollaboration removes exactly one collaboration
func (s *AdminStore) DeleteCollaboration(id string) error {
	var partner string
	err := s.mutate(func(next *models.AdminState) error {
		i := collabIndex(next.Collaborations, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("collaboration", id)
		}
		partner = next.Collaborations[i].Partner
		next.Collaborations = append(next.Collaborations[:i], next.Collaborations[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneInfo,
		Message:   fmt.Sprintf("Collaboration with %s deleted", partner),
		CreatedAt: time.Now(),
	})
	return nil
}

// --- Settings ---

// UpdateGeneralSettings applies a partial update to the general section
func (s *AdminStore) UpdateGeneralSettings(patch dto.GeneralSettingsPatch) error {
	return s.mutate(func(next *models.AdminState) error {
		g := &next.Settings.General
		if patch.CollegeName != nil {
			g.CollegeName = *patch.CollegeName
		}
		if patch.Website != nil {
			g.Website = *patch.Website
		}
		if patch.Address != nil {
			g.Address = *patch.Address
		}
		if patch.Description != nil {
			g.Description = *patch.Description
		}
		if patch.Logo != nil {
			g.Logo = *patch.Logo
		}
		return nil
	})
}

// UpdatePermissionSettings applies a partial update to the default rights for
// newly invited representatives. Existing representatives keep their rights.
func (s *AdminStore) UpdatePermissionSettings(patch dto.PermissionSettingsPatch) error {
	return s.mutate(func(next *models.AdminState) error {
		p := &next.Settings.Permissions
		if patch.Events != nil {
			p.Events = *patch.Events
		}
		if patch.Wall != nil {
			p.Wall = *patch.Wall
		}
		if patch.Collaborations != nil {
			p.Collaborations = *patch.Collaborations
		}
		return nil
	})
}

// UpdateNotificationSettings applies a partial update to the notification toggles
func (s *AdminStore) UpdateNotificationSettings(patch dto.NotificationSettingsPatch) error {
	return s.mutate(func(next *models.AdminState) error {
		applyNotificationPatch(&next.Settings.Notifications, patch)
		return nil
	})
}

// UpdatePrivacySettings applies a partial update to the privacy toggles
func (s *AdminStore) UpdatePrivacySettings(patch dto.PrivacySettingsPatch) error {
	return s.mutate(func(next *models.AdminState) error {
		applyPrivacyPatch(&next.Settings.Privacy, patch)
		return nil
	})
}

func applyNotificationPatch(settings *models.NotificationSettings, patch dto.NotificationSettingsPatch) {
	if patch.EmailDigest != nil {
		settings.EmailDigest = *patch.EmailDigest
	}
	if patch.EventReminders != nil {
		settings.EventReminders = *patch.EventReminders
	}
	if patch.WallActivity != nil {
		settings.WallActivity = *patch.WallActivity
	}
	if patch.CollaborationUpdates != nil {
		settings.CollaborationUpdates = *patch.CollaborationUpdates
	}
}

func applyPrivacyPatch(settings *models.PrivacySettings, patch dto.PrivacySettingsPatch) {
	if patch.PublicProfile != nil {
		settings.PublicProfile = *patch.PublicProfile
	}
	if patch.ShowContactInfo != nil {
		settings.ShowContactInfo = *patch.ShowContactInfo
	}
	if patch.Searchable != nil {
		settings.Searchable = *patch.Searchable
	}
}
