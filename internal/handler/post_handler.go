package handler

import (
	"errors"
	"log"
	"net/http"

	"therapy_platform/internal/middleware"
	"therapy_platform/internal/model"
	"therapy_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler handles therapist post requests
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(s service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

// Helper to get the authenticated user from context
func getAuthUser(c *gin.Context) (*model.User, error) {
	user := middleware.AuthUser(c)
	if user == nil {
		return nil, errors.New("user not found in context")
	}
	return user, nil
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// The media file is optional; FormFile errors simply mean none was sent
	media, _ := c.FormFile("media")

	post, err := h.service.CreatePost(c.Request.Context(), user.ID, req, media)
	if err != nil {
		log.Printf("Error creating post: %v", err) // Log detailed error
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post_id": post.ID,
	})
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// RegisterPostRoutes registers post routes. Creation is guarded by
// authentication and then the therapist check, in that order.
func (h *PostHandler) RegisterPostRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, therapistMW gin.HandlerFunc) {
	rg.POST("/post", authMW, therapistMW, h.CreatePost)
	rg.GET("/posts", h.ListPosts)
}
