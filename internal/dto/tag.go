package dto

import "time"

// CreateTagRequest is the JSON body for POST /tags.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"required"`
}

// UpdateTagRequest is the JSON body for PATCH /tags/:id.
type UpdateTagRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color *string `json:"color"`
}

type TagResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListTagsResponse struct {
	Items []TagResponse `json:"items"`
}
