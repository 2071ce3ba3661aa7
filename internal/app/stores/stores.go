// Package stores holds the role-scoped dashboard state stores. Each store
// owns one immutable state snapshot plus a closed set of mutators; a mutator
// clones the snapshot, edits the clone, recomputes the derived aggregates and
// replaces the snapshot wholesale, then notifies subscribers synchronously.
// Consumers must treat snapshots as read-only.
package stores

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/dashboard/internal/app/models"
)

// Storage keys for the persisted state documents
const (
	usersKey      = "campushub.users"
	sessionKey    = "campushub.session"
	adminStateKey = "campushub.admin_dashboard"
	repStateKey   = "campushub.rep_dashboard"
)

// NewEntityID generates a collection-unique id: prefix, creation timestamp
// and a random suffix. The suffix keeps ids unique within one millisecond.
func NewEntityID(prefix string) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

func repIndex(reps []models.Representative, id string) int {
	for i := range reps {
		if reps[i].ID == id {
			return i
		}
	}
	return -1
}

func postIndex(posts []models.WallPost, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}

func eventIndex(events []models.Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

func collabIndex(collabs []models.Collaboration, id string) int {
	for i := range collabs {
		if collabs[i].ID == id {
			return i
		}
	}
	return -1
}
