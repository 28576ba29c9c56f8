package dto

import "time"

type AttachmentResponse struct {
	ID           int64     `json:"id"`
	FkCardID     int64     `json:"fk_card_id"`
	UploadedByID int64     `json:"uploaded_by_id"`
	FileName     string    `json:"file_name"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListAttachmentsResponse struct {
	Items []AttachmentResponse `json:"items"`
}
