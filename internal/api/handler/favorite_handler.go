package handler

import (
	"net/http"

	"mediarate/internal/api/middleware"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	api.POST("/media/:id/favorite", authRequired, h.Mark)
	api.DELETE("/media/:id/favorite", authRequired, h.Unmark)
}

// Mark answers 204 when the favorite was newly created and 200 when it
// already existed.
func (h *FavoriteHandler) Mark(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	created, err := h.favoriteService.Mark(userID, mediaID)
	if err != nil {
		respondError(c, err)
		return
	}

	if created {
		c.Status(http.StatusNoContent)
		return
	}
	c.Status(http.StatusOK)
}

func (h *FavoriteHandler) Unmark(c *gin.Context) {
	mediaID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := h.favoriteService.Unmark(userID, mediaID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
