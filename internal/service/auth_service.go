package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"therapy_platform/internal/model"
	"therapy_platform/internal/repository"
	"therapy_platform/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyExists  = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

// AuthService provides registration, login and session resolution
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtUtil     *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtUtil:     jwtUtil,
	}
}

// Register creates a new user account. Username and email are globally
// unique; a duplicate of either is a conflict.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing == nil {
		existing, err = s.userRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsTherapist:  req.IsTherapist,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login verifies credentials and establishes a server-side session.
// Unknown user and wrong password return the same error so the caller
// cannot tell which one failed.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(s.jwtUtil.ExpiresIn()),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, session.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Authenticate resolves a session token to its user. The token carries
// the session ID, but the session row is authoritative: a deleted or
// expired row means the login is gone regardless of the token's own
// expiry.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}
	return user, nil
}

// Logout deletes the server-side session referenced by the token
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return ErrSessionNotFound
	}
	if err := s.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
