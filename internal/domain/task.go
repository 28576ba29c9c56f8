package domain

import "time"

// Task is a checklist item on a card. Position is unique within the card.
// completed=true implies CompletedAt is set; clearing completed keeps the
// timestamp as history.
type Task struct {
	ID          int64
	CardID      int64
	Title       string
	Position    int
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
