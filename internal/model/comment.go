package model

import "time"

// Comment is attached to a post and authored by any user.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	PostID    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest is the body of POST /comment
type CreateCommentRequest struct {
	PostID  int64  `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}
