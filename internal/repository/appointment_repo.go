package repository

import (
	"context"
	"fmt"

	"therapy_platform/internal/model"
)

// AppointmentRepository defines operations for appointment data.
// There is deliberately no overlap query: double-booking is allowed.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindByUser(ctx context.Context, userID int) ([]model.Appointment, error)
	FindByTherapist(ctx context.Context, therapistID int) ([]model.Appointment, error)
}

type appointmentRepository struct {
	db DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts a new appointment into the database
func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	sql := `INSERT INTO appointments (user_id, therapist_id, date, duration, status, notes, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, a.UserID, a.TherapistID, a.Date, a.Duration, a.Status, a.Notes, a.CreatedAt).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// FindByUser retrieves appointments requested by a user
func (r *appointmentRepository) FindByUser(ctx context.Context, userID int) ([]model.Appointment, error) {
	sql := `SELECT id, user_id, therapist_id, date, duration, status, notes, created_at
            FROM appointments WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	return r.query(ctx, sql, userID)
}

// FindByTherapist retrieves appointments targeting a therapist
func (r *appointmentRepository) FindByTherapist(ctx context.Context, therapistID int) ([]model.Appointment, error) {
	sql := `SELECT id, user_id, therapist_id, date, duration, status, notes, created_at
            FROM appointments WHERE therapist_id = $1 ORDER BY date DESC, created_at DESC`
	return r.query(ctx, sql, therapistID)
}

func (r *appointmentRepository) query(ctx context.Context, sql string, arg interface{}) ([]model.Appointment, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.TherapistID, &a.Date, &a.Duration, &a.Status, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, nil
}
