package handler

import (
	"net/http"

	"mediarate/internal/api/dto"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts the credential endpoints. The register and login
// routes sit behind the rate limiter; logout requires authentication.
func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup, authRequired, rateLimited gin.HandlerFunc) {
	users := api.Group("/users")
	users.POST("/register", rateLimited, h.Register)
	users.POST("/login", rateLimited, h.Login)
	users.POST("/logout", authRequired, h.Logout)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Status:   "created",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
