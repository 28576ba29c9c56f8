package dto

import "time"

// CreateTaskRequest is the JSON body for POST /tasks.
type CreateTaskRequest struct {
	FkCardID int64  `json:"fk_card_id" binding:"required"`
	Title    string `json:"title" binding:"required,min=1,max=100"`
	Position *int   `json:"position" binding:"required"`
}

// UpdateTaskRequest is the JSON body for PATCH /tasks/:id. Setting
// completed=true without completed_at stamps the current time.
type UpdateTaskRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=100"`
	Position    *int      `json:"position"`
	Completed   *bool     `json:"completed"`
	CompletedAt *DateTime `json:"completed_at"`
}

type TaskResponse struct {
	ID          int64      `json:"id"`
	FkCardID    int64      `json:"fk_card_id"`
	Title       string     `json:"title"`
	Position    int        `json:"position"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}
