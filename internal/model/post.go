package model

import "time"

const (
	MediaTypeText  = "text"
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Post is a therapist-authored article, optionally carrying an
// uploaded media file referenced by its stored filename.
type Post struct {
	ID          int64     `json:"id"`
	TherapistID int       `json:"therapist_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	MediaType   string    `json:"media_type"` // "text", "image" or "video"
	MediaURL    *string   `json:"media_url,omitempty"` // Pointer for optional field
	CreatedAt   time.Time `json:"created_at"`
}

// CreatePostRequest is the multipart form of POST /post. The media
// file itself is read separately from the "media" form field.
type CreatePostRequest struct {
	Title     string `form:"title" binding:"required"`
	Content   string `form:"content" binding:"required"`
	MediaType string `form:"media_type" binding:"omitempty,oneof=text image video"`
}
