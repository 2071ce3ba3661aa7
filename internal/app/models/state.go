package models

import (
	"sort"

	"github.com/campushub/dashboard/internal/app/models/dto/enums"
)

// CollegeProfile is the admin dashboard's own college record
type CollegeProfile struct {
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	Website     string `json:"website,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

// RepProfile is the rep dashboard's own profile record
type RepProfile struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

// AdminState is the complete snapshot owned by the admin dashboard store.
// Snapshots are immutable: mutators clone, modify the clone and replace.
type AdminState struct {
	Profile         CollegeProfile   `json:"profile"`
	Representatives []Representative `json:"representatives"`
	WallPosts       []WallPost       `json:"wallPosts"`
	Events          []Event          `json:"events"`
	Collaborations  []Collaboration  `json:"collaborations"`
	Settings        AdminSettings    `json:"settings"`
	Derived         AdminDerived     `json:"-"` // Recomputed on every replacement, never persisted
}

// AdminDerived are the aggregates recomputed wholesale on every state change
type AdminDerived struct {
	ActiveRepresentatives  int
	PendingRepresentatives int
	UpcomingEvents         []Event
	TotalReactions         int
	TotalComments          int
	TotalViews             int
}

// RepState is the complete snapshot owned by the rep dashboard store
type RepState struct {
	Profile        RepProfile      `json:"profile"`
	Events         []Event         `json:"events"`
	Collaborations []Collaboration `json:"collaborations"`
	WallPosts      []WallPost      `json:"wallPosts"`
	Settings       RepSettings     `json:"settings"`
	Derived        RepDerived      `json:"-"`
}

// RepDerived are the aggregates recomputed wholesale on every state change
type RepDerived struct {
	UpcomingEvents       []Event
	ActiveCollaborations int
	TotalReactions       int
	TotalComments        int
}

// Clone returns a deep copy of the state safe to mutate before replacement
func (s AdminState) Clone() AdminState {
	s.Representatives = append([]Representative(nil), s.Representatives...)
	s.WallPosts = cloneWallPosts(s.WallPosts)
	s.Events = append([]Event(nil), s.Events...)
	s.Collaborations = append([]Collaboration(nil), s.Collaborations...)
	return s
}

// Clone returns a deep copy of the state safe to mutate before replacement
func (s RepState) Clone() RepState {
	s.Events = append([]Event(nil), s.Events...)
	s.Collaborations = append([]Collaboration(nil), s.Collaborations...)
	s.WallPosts = cloneWallPosts(s.WallPosts)
	return s
}

func cloneWallPosts(posts []WallPost) []WallPost {
	out := append([]WallPost(nil), posts...)
	for i := range out {
		out[i].Comments = append([]Comment(nil), out[i].Comments...)
	}
	return out
}

// Recompute refreshes the derived aggregates from the current collections
func (s *AdminState) Recompute() {
	d := AdminDerived{}
	for _, rep := range s.Representatives {
		switch rep.Status {
		case enums.RepStatusActive:
			d.ActiveRepresentatives++
		case enums.RepStatusPending:
			d.PendingRepresentatives++
		}
	}
	for _, post := range s.WallPosts {
		d.TotalReactions += post.Reactions.Total()
		d.TotalComments += len(post.Comments)
		d.TotalViews += post.Analytics.Views
	}
	d.UpcomingEvents = upcomingEvents(s.Events)
	s.Derived = d
}

// Recompute refreshes the derived aggregates from the current collections
func (s *RepState) Recompute() {
	d := RepDerived{}
	for _, collab := range s.Collaborations {
		if collab.Status == enums.CollabStatusActive {
			d.ActiveCollaborations++
		}
	}
	for _, post := range s.WallPosts {
		d.TotalReactions += post.Reactions.Total()
		d.TotalComments += len(post.Comments)
	}
	d.UpcomingEvents = upcomingEvents(s.Events)
	s.Derived = d
}

// upcomingEvents filters events still upcoming and sorts them ascending by date
func upcomingEvents(events []Event) []Event {
	var out []Event
	for _, ev := range events {
		if ev.Status == enums.EventStatusUpcoming {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
