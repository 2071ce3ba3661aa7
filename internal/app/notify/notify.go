// Package notify is the user-facing notification collaborator. Store mutators
// push {tone, message} records into a sink; what the sink does with them
// (toasts, badges, logs) is the consumer's business.
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/dashboard/internal/app/models/dto/enums"
)

// Notification is one user-facing message
type Notification struct {
	Tone      enums.NotificationTone `json:"tone"`
	Message   string                 `json:"message"`
	CreatedAt time.Time              `json:"createdAt"`
}

// Notifier accepts notifications emitted by store mutators
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the application log
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier
func (n *LogNotifier) Notify(notification Notification) {
	n.logger.Info().
		Str("tone", string(notification.Tone)).
		Msg(notification.Message)
}

// BufferNotifier collects notifications in memory. Used by tests and by
// consumers that render their own notification feed.
type BufferNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewBufferNotifier creates an empty BufferNotifier
func NewBufferNotifier() *BufferNotifier {
	return &BufferNotifier{}
}

// Notify implements Notifier
func (n *BufferNotifier) Notify(notification Notification) {
	n.mu.Lock()
	n.notifications = append(n.notifications, notification)
	n.mu.Unlock()
}

// All returns a copy of the collected notifications in arrival order
func (n *BufferNotifier) All() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.notifications...)
}

// Reset discards the collected notifications
func (n *BufferNotifier) Reset() {
	n.mu.Lock()
	n.notifications = nil
	n.mu.Unlock()
}
