package dto

import "time"

// CreateCommentRequest is the JSON body for POST /comments. The author is
// always the authenticated principal.
type CreateCommentRequest struct {
	FkCardID    int64  `json:"fk_card_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required"`
}

type CommentResponse struct {
	ID          int64     `json:"id"`
	FkCardID    int64     `json:"fk_card_id"`
	FkUserID    int64     `json:"fk_user_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListCommentsResponse struct {
	Items []CommentResponse `json:"items"`
}
