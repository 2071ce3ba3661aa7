package enums

import (
	"fmt"

	"github.com/campushub/dashboard/internal/pkg/apperrors"
)

// RepresentativeStatus is the lifecycle state of a college representative.
// Representatives are never hard-deleted; removal is the "removed" state.
type RepresentativeStatus string

const (
	RepStatusActive  RepresentativeStatus = "active"
	RepStatusPending RepresentativeStatus = "pending"
	RepStatusRemoved RepresentativeStatus = "removed"
)

// EventStatus is the lifecycle state of an event. Shared by both dashboards.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

// CollaborationStatus is the lifecycle state of an inter-college collaboration
type CollaborationStatus string

const (
	CollabStatusProposed  CollaborationStatus = "proposed"
	CollabStatusActive    CollaborationStatus = "active"
	CollabStatusCompleted CollaborationStatus = "completed"
)

// Allowed transitions per status value. A status may always be re-set to its
// current value, so setting a status is idempotent.
var (
	repTransitions = map[RepresentativeStatus][]RepresentativeStatus{
		RepStatusPending: {RepStatusActive, RepStatusRemoved},
		RepStatusActive:  {RepStatusRemoved},
		RepStatusRemoved: {RepStatusPending},
	}

	eventTransitions = map[EventStatus][]EventStatus{
		EventStatusUpcoming:  {EventStatusOngoing, EventStatusCompleted},
		EventStatusOngoing:   {EventStatusCompleted},
		EventStatusCompleted: {},
	}

	collabTransitions = map[CollaborationStatus][]CollaborationStatus{
		CollabStatusProposed:  {CollabStatusActive, CollabStatusCompleted},
		CollabStatusActive:    {CollabStatusCompleted},
		CollabStatusCompleted: {},
	}
)

// TransitionRepresentativeStatus validates and applies a representative status change
func TransitionRepresentativeStatus(current, requested RepresentativeStatus) (RepresentativeStatus, error) {
	if current == requested {
		return requested, nil
	}
	for _, next := range repTransitions[current] {
		if next == requested {
			return requested, nil
		}
	}
	return current, invalidTransition("representative", string(current), string(requested))
}

// TransitionEventStatus validates and applies an event status change
func TransitionEventStatus(current, requested EventStatus) (EventStatus, error) {
	if current == requested {
		return requested, nil
	}
	for _, next := range eventTransitions[current] {
		if next == requested {
			return requested, nil
		}
	}
	return current, invalidTransition("event", string(current), string(requested))
}

// TransitionCollaborationStatus validates and applies a collaboration status change
func TransitionCollaborationStatus(current, requested CollaborationStatus) (CollaborationStatus, error) {
	if current == requested {
		return requested, nil
	}
	for _, next := range collabTransitions[current] {
		if next == requested {
			return requested, nil
		}
	}
	return current, invalidTransition("collaboration", string(current), string(requested))
}

func invalidTransition(kind, current, requested string) error {
	return apperrors.NewCustomError(
		apperrors.ErrInvalidTransition,
		fmt.Sprintf("%s status cannot change from %q to %q", kind, current, requested),
	)
}
