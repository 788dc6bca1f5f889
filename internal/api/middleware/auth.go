package middleware

import (
	"mediarate/internal/api/httperr"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is where RequireAuth stores the authenticated user id.
const ContextUserIDKey = "userID"

// RequireAuth authenticates API requests from the Authorization header.
// A missing or malformed header yields 401; a well-formed token that fails
// verification yields 403.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authService.Authorize(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserID reads the authenticated user id that RequireAuth stored. The bool
// is false when the route was not behind RequireAuth.
func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := v.(int64)
	return userID, ok
}
