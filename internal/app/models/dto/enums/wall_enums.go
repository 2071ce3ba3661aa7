package enums

// ReactionKind identifies one of the wall post reaction counters
type ReactionKind string

const (
	ReactionLikes      ReactionKind = "likes"
	ReactionCelebrates ReactionKind = "celebrates"
	ReactionCurious    ReactionKind = "curious"
)

// Valid reports whether k is a known reaction counter
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionLikes, ReactionCelebrates, ReactionCurious:
		return true
	}
	return false
}

// WallMetric identifies one of the wall post analytics counters
type WallMetric string

const (
	MetricViews  WallMetric = "views"
	MetricSaves  WallMetric = "saves"
	MetricShares WallMetric = "shares"
)

// Valid reports whether m is a known analytics counter
func (m WallMetric) Valid() bool {
	switch m {
	case MetricViews, MetricSaves, MetricShares:
		return true
	}
	return false
}

// NotificationTone is the severity of a user-facing notification
type NotificationTone string

const (
	ToneSuccess NotificationTone = "success"
	ToneInfo    NotificationTone = "info"
	ToneError   NotificationTone = "error"
)
