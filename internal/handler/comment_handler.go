package handler

import (
	"log"
	"net/http"
	"strconv"

	"therapy_platform/internal/model"
	"therapy_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment requests
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(s service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), user.ID, req)
	if err != nil {
		log.Printf("Error adding comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Comment added successfully",
		"comment_id": comment.ID,
	})
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	comments, err := h.service.ListComments(c.Request.Context(), postID)
	if err != nil {
		log.Printf("Error listing comments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// RegisterCommentRoutes registers comment routes
func (h *CommentHandler) RegisterCommentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/comment", authMW, h.AddComment)
	rg.GET("/comments/:post_id", h.ListComments)
}
