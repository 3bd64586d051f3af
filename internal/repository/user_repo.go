package repository

import (
	"context"
	"errors"
	"fmt"

	"therapy_platform/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, email, password_hash, is_therapist, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.Email, user.PasswordHash, user.IsTherapist, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByUsername retrieves a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, email, password_hash, is_therapist, created_at FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsTherapist, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, email, password_hash, is_therapist, created_at FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsTherapist, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, username, email, password_hash, is_therapist, created_at FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsTherapist, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}
