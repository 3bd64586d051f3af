package model

import "time"

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// DefaultAppointmentDuration is applied when the request omits one.
const DefaultAppointmentDuration = 60

// Appointment links a requesting user to a target therapist. It is a
// pure scheduling record: no availability or overlap checking is done
// anywhere, so overlapping appointments are permitted.
type Appointment struct {
	ID          int64     `json:"id"`
	UserID      int       `json:"user_id"`
	TherapistID int       `json:"therapist_id"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"` // minutes
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookAppointmentRequest is the body of POST /appointment. Date is an
// ISO-8601 timestamp and is parsed by the service layer.
type BookAppointmentRequest struct {
	TherapistID int    `json:"therapist_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Duration    *int   `json:"duration,omitempty"`
	Notes       string `json:"notes"`
}
