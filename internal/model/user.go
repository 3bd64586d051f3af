package model

import "time"

// User represents an account in the system. Therapists are regular
// accounts with the is_therapist flag set.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	IsTherapist  bool      `json:"is_therapist"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"` // Basic validation
	IsTherapist bool   `json:"is_therapist"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
