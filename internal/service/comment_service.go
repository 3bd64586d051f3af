package service

import (
	"context"
	"fmt"
	"time"

	"therapy_platform/internal/model"
	"therapy_platform/internal/repository"
)

// CommentService defines operations for post comments
type CommentService interface {
	AddComment(ctx context.Context, userID int, req model.CreateCommentRequest) (*model.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
}

type commentService struct {
	repo repository.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{repo: repo}
}

// AddComment attaches a comment to a post. The referenced post is not
// looked up first; a dangling post ID only fails on the foreign key.
func (s *commentService) AddComment(ctx context.Context, userID int, req model.CreateCommentRequest) (*model.Comment, error) {
	comment := &model.Comment{
		UserID:    userID,
		PostID:    req.PostID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment in repo: %w", err)
	}
	return comment, nil
}

// ListComments returns all comments for a post, newest first
func (s *commentService) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments, err := s.repo.FindByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments from repo: %w", err)
	}
	return comments, nil
}
