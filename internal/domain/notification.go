package domain

import "time"

// NotificationType classifies what triggered a notification.
type NotificationType string

const (
	NotificationComment       NotificationType = "comment"
	NotificationTaskCompleted NotificationType = "task_completed"
	NotificationCardMoved     NotificationType = "card_moved"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationComment, NotificationTaskCompleted, NotificationCardMoved:
		return true
	}
	return false
}

// Notification belongs to the user it is addressed to.
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Message   string
	Read      bool
	CreatedAt time.Time
}
