package dto

import "time"

// CreateBoardRequest is the JSON body for POST /boards.
type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateBoardRequest is the JSON body for PATCH /boards/:id. Any submitted
// owner field is ignored; ownership is not transferable.
type UpdateBoardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type BoardResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListBoardsResponse struct {
	Items []BoardResponse `json:"items"`
}

// AddCollaboratorRequest is the JSON body for POST /boards/:id/collaborators.
type AddCollaboratorRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// UpdateCollaboratorRequest changes an existing grant's role.
type UpdateCollaboratorRequest struct {
	Role string `json:"role" binding:"required"`
}

type CollaboratorResponse struct {
	ID        int64     `json:"id"`
	BoardID   int64     `json:"board_id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ListCollaboratorsResponse struct {
	Items []CollaboratorResponse `json:"items"`
}
