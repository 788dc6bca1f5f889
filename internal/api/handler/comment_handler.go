package handler

import (
	"net/http"

	"mediarate/internal/api/dto"
	"mediarate/internal/api/middleware"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes mounts the comment endpoints. The public listing only ever
// shows approved comments.
func (h *CommentHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	api.POST("/media/:id/comments", authRequired, h.Create)
	api.GET("/media/:id/comments", h.ListApproved)

	comments := api.Group("/comments")
	comments.PUT("/:id", authRequired, h.Update)
	comments.DELETE("/:id", authRequired, h.Delete)
	comments.POST("/:id/approve", authRequired, h.Approve)
}

func (h *CommentHandler) Create(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(userID, mediaID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) ListApproved(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListApproved(mediaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(userID, id, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := h.commentService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.Approve(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}
