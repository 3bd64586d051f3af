package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"therapy_platform/internal/model"
	"therapy_platform/internal/repository"
)

var ErrInvalidDate = errors.New("invalid date, expected an ISO-8601 timestamp")

// appointmentDateLayouts are the accepted ISO-8601 shapes, tried in order.
var appointmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// AppointmentService defines operations for appointment records
type AppointmentService interface {
	BookAppointment(ctx context.Context, userID int, req model.BookAppointmentRequest) (*model.Appointment, error)
	ListAppointments(ctx context.Context, user *model.User) ([]model.Appointment, error)
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

// BookAppointment stores an appointment request. Neither the target
// therapist's existence nor calendar overlap is checked: two bookings
// for the same slot both succeed.
func (s *appointmentService) BookAppointment(ctx context.Context, userID int, req model.BookAppointmentRequest) (*model.Appointment, error) {
	date, err := parseAppointmentDate(req.Date)
	if err != nil {
		return nil, err
	}

	duration := model.DefaultAppointmentDuration
	if req.Duration != nil {
		duration = *req.Duration
	}

	appointment := &model.Appointment{
		UserID:      userID,
		TherapistID: req.TherapistID,
		Date:        date,
		Duration:    duration,
		Status:      model.AppointmentStatusPending,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment in repo: %w", err)
	}
	return appointment, nil
}

// ListAppointments is role-filtered: therapists see appointments where
// they are the target, everyone else sees the ones they requested.
func (s *appointmentService) ListAppointments(ctx context.Context, user *model.User) ([]model.Appointment, error) {
	var (
		appointments []model.Appointment
		err          error
	)
	if user.IsTherapist {
		appointments, err = s.repo.FindByTherapist(ctx, user.ID)
	} else {
		appointments, err = s.repo.FindByUser(ctx, user.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments from repo: %w", err)
	}
	return appointments, nil
}

func parseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
