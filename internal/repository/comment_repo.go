package repository

import (
	"context"
	"fmt"

	"therapy_platform/internal/model"
)

// CommentRepository defines operations for comment data
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

type commentRepository struct {
	db DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment into the database
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	sql := `INSERT INTO comments (user_id, post_id, content, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, c.UserID, c.PostID, c.Content, c.CreatedAt).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindByPost retrieves all comments for a post, newest first
func (r *commentRepository) FindByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	sql := `SELECT id, user_id, post_id, content, created_at
            FROM comments WHERE post_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}
