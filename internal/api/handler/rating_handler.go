package handler

import (
	"net/http"

	"mediarate/internal/api/dto"
	"mediarate/internal/api/middleware"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	api.POST("/media/:id/rate", authRequired, h.Rate)
	api.GET("/media/:id/average-rating", h.Average)

	ratings := api.Group("/ratings")
	ratings.GET("/:id", authRequired, h.Get)
	ratings.PUT("/:id", authRequired, h.Update)
	ratings.POST("/:id/like", authRequired, h.Like)
	ratings.POST("/:id/confirm", authRequired, h.Confirm)
}

// Rate creates or replaces the caller's rating for a media entry. Both
// outcomes return 200; the body carries the row id either way.
func (h *RatingHandler) Rate(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stars := req.StarValue()
	ratingID, err := h.ratingService.SetRating(userID, mediaID, stars, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{
		ID:      ratingID,
		MediaID: mediaID,
		Rating:  stars,
		UserID:  userID,
	})
}

func (h *RatingHandler) Average(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}

	avg, count, err := h.ratingService.Average(mediaID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AverageRatingResponse{
		MediaID:       mediaID,
		AverageRating: avg,
		RatingCount:   count,
	})
}

func (h *RatingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rating, err := h.ratingService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.UpdateByID(userID, id, req.StarValue(), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := h.ratingService.ToggleLike(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RatingHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := h.ratingService.Confirm(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
