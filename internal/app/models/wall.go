package models

import (
	"time"

	"github.com/campushub/dashboard/internal/app/models/dto/enums"
)

// WallPost defines one post on a college wall
type WallPost struct {
	ID          string        `json:"id"`
	Title       string        `json:"title" example:"Tech Fest 2026"`
	Description string        `json:"description"`
	Image       string        `json:"image,omitempty"` // Opaque image reference
	CreatedAt   time.Time     `json:"createdAt"`
	CreatedBy   string        `json:"createdBy" example:"Admin Office"`
	Reactions   WallReactions `json:"reactions"`
	Analytics   WallAnalytics `json:"analytics"`
	Comments    []Comment     `json:"comments"`
	Pinned      bool          `json:"pinned"`
}

// WallReactions are monotonically incremented counters. There is no per-user
// tracking: reacting twice counts twice.
type WallReactions struct {
	Likes      int `json:"likes"`
	Celebrates int `json:"celebrates"`
	Curious    int `json:"curious"`
}

// Total sums all reaction counters of one post
func (r WallReactions) Total() int {
	return r.Likes + r.Celebrates + r.Curious
}

// Increment returns a copy of r with the counter for kind raised by one
func (r WallReactions) Increment(kind enums.ReactionKind) WallReactions {
	switch kind {
	case enums.ReactionLikes:
		r.Likes++
	case enums.ReactionCelebrates:
		r.Celebrates++
	case enums.ReactionCurious:
		r.Curious++
	}
	return r
}

// WallAnalytics are best-effort engagement counters for one post
type WallAnalytics struct {
	Views  int `json:"views"`
	Saves  int `json:"saves"`
	Shares int `json:"shares"`
}

// Increment returns a copy of a with the counter for metric raised by one
func (a WallAnalytics) Increment(metric enums.WallMetric) WallAnalytics {
	switch metric {
	case enums.MetricViews:
		a.Views++
	case enums.MetricSaves:
		a.Saves++
	case enums.MetricShares:
		a.Shares++
	}
	return a
}

// Comment is one comment under a wall post. Comments are appended, never edited.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
