package domain

import "time"

// Column belongs to exactly one board. Position is unique within the board.
type Column struct {
	ID        int64
	BoardID   int64
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
