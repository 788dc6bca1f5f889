package handler

import (
	"net/http"
	"strconv"

	"mediarate/internal/api/dto"
	"mediarate/internal/api/middleware"
	"mediarate/internal/api/repository"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// RegisterRoutes mounts the media CRUD surface. Listing and single reads are
// public; writes require authentication.
func (h *MediaHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	api.GET("/leaderboard", authRequired, h.Leaderboard)

	media := api.Group("/media")
	media.POST("", authRequired, h.Create)
	media.GET("", h.List)
	media.GET("/:id", h.Get)
	media.PUT("/:id", authRequired, h.Update)
	media.DELETE("/:id", authRequired, h.Delete)
}

func (h *MediaHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req dto.MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.mediaService.Create(userID, mediaInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *MediaHandler) List(c *gin.Context) {
	filter, err := parseMediaFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.mediaService.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.mediaService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	var req dto.MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.mediaService.Update(userID, id, mediaInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := h.mediaService.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MediaHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.mediaService.Leaderboard(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func mediaInput(req dto.MediaRequest) service.MediaInput {
	return service.MediaInput{
		Title:          req.Title,
		Rating:         req.Rating,
		Genre:          req.Genre,
		MediaType:      req.MediaType,
		AgeRestriction: req.AgeRestriction,
		ReleaseYear:    req.ReleaseYear,
	}
}

// parseMediaFilter reads the optional search parameters. A malformed rating
// is an error; malformed userId or ageRestriction values are ignored.
func parseMediaFilter(c *gin.Context) (repository.MediaFilter, error) {
	var filter repository.MediaFilter

	if title := c.Query("title"); title != "" {
		filter.Title = &title
	}
	if genre := c.Query("genre"); genre != "" {
		filter.Genre = &genre
	}
	if mediaType := c.Query("type"); mediaType != "" {
		filter.MediaType = &mediaType
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Rating = &rating
	}
	if raw := c.Query("userId"); raw != "" {
		if userID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.UserID = &userID
		}
	}
	if raw := c.Query("ageRestriction"); raw != "" {
		if age, err := strconv.Atoi(raw); err == nil {
			filter.AgeRestriction = &age
		}
	}

	return filter, nil
}
