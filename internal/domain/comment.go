package domain

import "time"

// Comment is authored by a user on a card. Text must be non-empty.
type Comment struct {
	ID        int64
	CardID    int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}
