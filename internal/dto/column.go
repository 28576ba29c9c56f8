package dto

import "time"

// CreateColumnRequest is the JSON body for POST /columns. Position is a
// pointer so an explicit 0 passes the required check.
type CreateColumnRequest struct {
	FkBoardID int64  `json:"fk_board_id" binding:"required"`
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Position  *int   `json:"position" binding:"required"`
}

// UpdateColumnRequest is the JSON body for PATCH /columns/:id.
type UpdateColumnRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Position *int    `json:"position"`
}

type ColumnResponse struct {
	ID        int64     `json:"id"`
	FkBoardID int64     `json:"fk_board_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListColumnsResponse struct {
	Items []ColumnResponse `json:"items"`
}
