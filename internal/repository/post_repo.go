package repository

import (
	"context"
	"fmt"

	"therapy_platform/internal/model"
)

// PostRepository defines operations for post data
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindAll(ctx context.Context) ([]model.Post, error)
}

type postRepository struct {
	db DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post into the database
func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	sql := `INSERT INTO posts (therapist_id, title, content, media_type, media_url, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, p.TherapistID, p.Title, p.Content, p.MediaType, p.MediaURL, p.CreatedAt).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// FindAll retrieves all posts, newest first. No pagination.
func (r *postRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	sql := `SELECT id, therapist_id, title, content, media_type, media_url, created_at
            FROM posts ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.TherapistID, &p.Title, &p.Content, &p.MediaType, &p.MediaURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return posts, nil
}
