package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"therapy_platform/internal/model"
	"therapy_platform/internal/repository"
)

// PostService defines operations for therapist posts
type PostService interface {
	CreatePost(ctx context.Context, therapistID int, req model.CreatePostRequest, media *multipart.FileHeader) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
}

type postService struct {
	repo       repository.PostRepository
	uploadsDir string
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository, uploadsDir string) PostService {
	return &postService{repo: repo, uploadsDir: uploadsDir}
}

// CreatePost stores a new post. A media file is only saved when one is
// supplied and the media type is image or video; the stored filename is
// recorded as the post's media URL. No file-type or size validation is
// performed (known limitation).
func (s *postService) CreatePost(ctx context.Context, therapistID int, req model.CreatePostRequest, media *multipart.FileHeader) (*model.Post, error) {
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = model.MediaTypeText
	}

	post := &model.Post{
		TherapistID: therapistID,
		Title:       req.Title,
		Content:     req.Content,
		MediaType:   mediaType,
		CreatedAt:   time.Now(),
	}

	if media != nil && (mediaType == model.MediaTypeImage || mediaType == model.MediaTypeVideo) {
		storedName, err := s.saveMediaFile(media)
		if err != nil {
			return nil, fmt.Errorf("failed to store media file: %w", err)
		}
		post.MediaURL = &storedName
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post in repo: %w", err)
	}
	return post, nil
}

// ListPosts returns all posts, newest first
func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts from repo: %w", err)
	}
	return posts, nil
}

// saveMediaFile writes the upload into the uploads dir under a
// timestamp-prefixed name and returns that name.
func (s *postService) saveMediaFile(fileHeader *multipart.FileHeader) (string, error) {
	storedName := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102150405"), filepath.Base(fileHeader.Filename))
	filePath := filepath.Join(s.uploadsDir, storedName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath) // Attempt to clean up
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return storedName, nil
}
