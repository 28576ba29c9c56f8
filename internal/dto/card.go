package dto

import "time"

// CreateCardRequest is the JSON body for POST /cards. The creator is always
// the authenticated principal; fk_user_id is not accepted on write.
type CreateCardRequest struct {
	FkColumnID       int64     `json:"fk_column_id" binding:"required"`
	Title            string    `json:"title" binding:"required,min=1,max=100"`
	Description      string    `json:"description" binding:"max=2000"`
	Position         *int      `json:"position"` // optional: null = pending manual placement
	StartDate        *DateTime `json:"start_date"`
	DueDate          *DateTime `json:"due_date"`
	Priority         *string   `json:"priority"` // U, I, M, L; default M
	Category         *string   `json:"category"` // default backlog
	FkAssignedUserID *int64    `json:"fk_assigned_user_id"`
}

// UpdateCardRequest is the JSON body for PATCH /cards/:id. nil = leave as is.
type UpdateCardRequest struct {
	FkColumnID       *int64    `json:"fk_column_id"`
	Title            *string   `json:"title" binding:"omitempty,min=1,max=100"`
	Description      *string   `json:"description" binding:"omitempty,max=2000"`
	Position         *int      `json:"position"`
	StartDate        *DateTime `json:"start_date"`
	DueDate          *DateTime `json:"due_date"`
	Priority         *string   `json:"priority"`
	Category         *string   `json:"category"`
	FkAssignedUserID *int64    `json:"fk_assigned_user_id"`
}

type CardResponse struct {
	ID               int64          `json:"id"`
	FkColumnID       int64          `json:"fk_column_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Position         *int           `json:"position"`
	StartDate        *time.Time     `json:"start_date"`
	DueDate          *time.Time     `json:"due_date"`
	Priority         string         `json:"priority"`
	Category         string         `json:"category"`
	FkUserID         int64          `json:"fk_user_id"`
	FkAssignedUserID *int64         `json:"fk_assigned_user_id"`
	Tags             []TagResponse  `json:"tags,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type ListCardsResponse struct {
	Items []CardResponse `json:"items"`
}
