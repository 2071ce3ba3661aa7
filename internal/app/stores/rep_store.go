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

// RepStore owns the college representative dashboard state: the rep's own
// profile, the events and collaborations they manage, their wall posts and
// settings. Same snapshot mechanics as AdminStore.
type RepStore struct {
	mu    sync.Mutex
	state *models.RepState

	storage  storage.Storage
	notifier notify.Notifier
	logger   zerolog.Logger

	subscribers map[int]func(*models.RepState)
	nextSubID   int
}

// NewRepStore builds a RepStore. The snapshot is loaded from storage; initial
// is the fallback when nothing usable is stored.
func NewRepStore(st storage.Storage, notifier notify.Notifier, logger zerolog.Logger, initial models.RepState) *RepStore {
	state := initial
	st.Load(repStateKey, &state)
	state.Recompute()

	return &RepStore{
		state:       &state,
		storage:     st,
		notifier:    notifier,
		logger:      logger,
		subscribers: make(map[int]func(*models.RepState)),
	}
}

// State returns the current snapshot
func (s *RepStore) State() *models.RepState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called synchronously with every new snapshot.
// The returned function cancels the subscription.
func (s *RepStore) Subscribe(fn func(*models.RepState)) func() {
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

func (s *RepStore) mutate(fn func(next *models.RepState) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	next.Recompute()
	snapshot := &next
	s.state = snapshot
	s.storage.Save(repStateKey, snapshot)

	subs := make([]func(*models.RepState), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
	return nil
}

// UpdateProfile applies a partial update to the rep's profile
func (s *RepStore) UpdateProfile(patch dto.RepProfilePatch) error {
	if err := validation.ValidateStruct(patch); err != nil {
		return err
	}
	return s.mutate(func(next *models.RepState) error {
		p := &next.Profile
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Department != nil {
			p.Department = *patch.Department
		}
		if patch.Email != nil {
			p.Email = *patch.Email
		}
		if patch.Avatar != nil {
			p.Avatar = *patch.Avatar
		}
		if patch.Bio != nil {
			p.Bio = *patch.Bio
		}
		return nil
	})
}

// CreateEvent adds a new event in upcoming state
func (s *RepStore) CreateEvent(req dto.CreateEventRequest) (models.Event, error) {
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
	if err := s.mutate(func(next *models.RepState) error {
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

// UpdateEventStatus moves an event along its lifecycle
func (s *RepStore) UpdateEventStatus(id string, status enums.EventStatus) error {
	return s.mutate(func(next *models.RepState) error {
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
func (s *RepStore) DeleteEvent(id string) error {
	return s.mutate(func(next *models.RepState) error {
		i := eventIndex(next.Events, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("event", id)
		}
		next.Events = append(next.Events[:i], next.Events[i+1:]...)
		return nil
	})
}

// ProposeCollaboration adds a new collaboration in proposed state
func (s *RepStore) ProposeCollaboration(req dto.CreateCollaborationRequest) (models.Collaboration, error) {
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
	if err := s.mutate(func(next *models.RepState) error {
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
func (s *RepStore) UpdateCollaborationStatus(id string, status enums.CollaborationStatus) error {
	return s.mutate(func(next *models.RepState) error {
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
func (s *RepStore) DeleteCollaboration(id string) error {
	return s.mutate(func(next *models.RepState) error {
		i := collabIndex(next.Collaborations, id)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("collaboration", id)
		}
		next.Collaborations = append(next.Collaborations[:i], next.Collaborations[i+1:]...)
		return nil
	})
}

// CreateWallPost publishes a new post at the top of the rep's wall
func (s *RepStore) CreateWallPost(req dto.CreateWallPostRequest) (models.WallPost, error) {
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
	if err := s.mutate(func(next *models.RepState) error {
		next.WallPosts = append([]models.WallPost{post}, next.WallPosts...)
		return nil
	}); err != nil {
		return models.WallPost{}, err
	}

	s.notifier.Notify(notify.Notification{
		Tone:      enums.ToneSuccess,
		Message:   fmt.Sprintf("Post %q published", post.Title),
		CreatedAt: time.Now(),
	})
	return post, nil
}

// ReactToWallPost increments one reaction counter on a post. Unconditional
// monotonic increment, same semantics as the admin wall.
func (s *RepStore) ReactToWallPost(postID string, kind enums.ReactionKind) error {
	if !kind.Valid() {
		return apperrors.NewValidationError(map[string]interface{}{"kind": "unknown reaction kind"})
	}
	return s.mutate(func(next *models.RepState) error {
		i := postIndex(next.WallPosts, postID)
		if i < 0 {
			return apperrors.NewEntityNotFoundError("wall post", postID)
		}
		next.WallPosts[i].Reactions = next.WallPosts[i].Reactions.Increment(kind)
		return nil
	})
}

// AddWallComment appends a comment to a post
func (s *RepStore) AddWallComment(postID string, req dto.AddCommentRequest) (models.Comment, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        NewEntityID("comment"),
		Author:    req.Author,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	err := s.mutate(func(next *models.RepState) error {
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

// UpdateNotificationSettings applies a partial update to the notification toggles
func (s *RepStore) UpdateNotificationSettings(patch dto.NotificationSettingsPatch) error {
	return s.mutate(func(next *models.RepState) error {
		applyNotificationPatch(&next.Settings.Notifications, patch)
		return nil
	})
}

// UpdatePrivacySettings applies a partial update to the privacy toggles
func (s *RepStore) UpdatePrivacySettings(patch dto.PrivacySettingsPatch) error {
	return s.mutate(func(next *models.RepState) error {
		applyPrivacyPatch(&next.Settings.Privacy, patch)
		return nil
	})
}
