package model

import "time"

// Session is a server-side login record. The client holds a signed
// token referencing the session ID; deleting the row revokes the login.
type Session struct {
	ID        string    `json:"id"` // UUID
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
