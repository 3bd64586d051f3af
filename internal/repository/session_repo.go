package repository

import (
	"context"
	"errors"
	"fmt"

	"therapy_platform/internal/model"

	"github.com/jackc/pgx/v5"
)

// SessionRepository defines operations for server-side login sessions
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepository struct {
	db DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create inserts a new session row
func (r *sessionRepository) Create(ctx context.Context, s *model.Session) error {
	sql := `INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, sql, s.ID, s.UserID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByID retrieves a session by its ID
func (r *sessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	s := &model.Session{}
	sql := `SELECT id, user_id, created_at, expires_at FROM sessions WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Session not found (logged out or never existed)
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return s, nil
}

// Delete removes a session row, revoking the login
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM sessions WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
