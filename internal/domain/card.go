package domain

import "time"

// Priority of a card.
type Priority string

const (
	PriorityUrgent    Priority = "U"
	PriorityImportant Priority = "I"
	PriorityMedium    Priority = "M"
	PriorityLow       Priority = "L"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityImportant, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Category is the workflow stage of a card.
type Category string

const (
	CategoryBacklog    Category = "backlog"
	CategoryInProgress Category = "in_progress"
	CategoryStandby    Category = "standby"
	CategoryDeveloped  Category = "developed"
	CategoryTesting    Category = "testing"
	CategoryDone       Category = "done"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBacklog, CategoryInProgress, CategoryStandby,
		CategoryDeveloped, CategoryTesting, CategoryDone:
		return true
	}
	return false
}

// Card belongs to exactly one column. Position is unique within the column
// when set; nil means the card awaits manual placement.
type Card struct {
	ID             int64
	ColumnID       int64
	Title          string
	Description    string
	Position       *int
	StartDate      *time.Time
	DueDate        *time.Time
	Priority       Priority
	Category       Category
	UserID         int64 // creator
	AssignedUserID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
