package handler

import (
	"net/http"
	"strconv"

	"mediarate/internal/api/dto"
	"mediarate/internal/api/middleware"
	"mediarate/internal/api/models"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	api.GET("/recommendations", authRequired, h.OwnRecommendations)

	users := api.Group("/users")
	users.GET("/profile", authRequired, h.OwnProfile)
	users.GET("/:id/profile", authRequired, h.Profile)
	users.PUT("/:id/profile", authRequired, h.UpdateProfile)
	users.GET("/:id/ratings", authRequired, h.Ratings)
	users.GET("/:id/favorites", authRequired, h.Favorites)
	users.GET("/:id/recommendations", authRequired, h.Recommendations)
}

func (h *UserHandler) OwnProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	h.renderProfile(c, userID)
}

func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := h.scopedUser(c)
	if !ok {
		return
	}
	h.renderProfile(c, userID)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.scopedUser(c)
	if !ok {
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(userID, req.Email, req.FavoriteGenre)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(user))
}

func (h *UserHandler) Ratings(c *gin.Context) {
	userID, ok := h.scopedUser(c)
	if !ok {
		return
	}

	ratings, err := h.userService.Ratings(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (h *UserHandler) Favorites(c *gin.Context) {
	userID, ok := h.scopedUser(c)
	if !ok {
		return
	}

	favorites, err := h.userService.Favorites(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *UserHandler) Recommendations(c *gin.Context) {
	userID, ok := h.scopedUser(c)
	if !ok {
		return
	}
	h.renderRecommendations(c, userID)
}

func (h *UserHandler) OwnRecommendations(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	h.renderRecommendations(c, userID)
}

func (h *UserHandler) renderRecommendations(c *gin.Context, userID int64) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	recType := c.Query("type")

	recommendations, err := h.userService.Recommendations(userID, limit, recType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recommendations)
}

// scopedUser validates the path id and returns the id to operate on. The
// path must name an existing user, but every operation is scoped to the
// authenticated caller; the path id grants no access to other accounts.
func (h *UserHandler) scopedUser(c *gin.Context) (int64, bool) {
	pathUserID, ok := pathID(c, "id")
	if !ok {
		return 0, false
	}

	exists, err := h.userService.Exists(pathUserID)
	if err != nil {
		respondError(c, err)
		return 0, false
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return 0, false
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	return userID, true
}

func (h *UserHandler) renderProfile(c *gin.Context, userID int64) {
	user, err := h.userService.Profile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profileResponse(user))
}

func profileResponse(user *models.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FavoriteGenre: user.FavoriteGenre,
	}
}
