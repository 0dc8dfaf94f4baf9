package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// currentUserKey holds the resolved, sanitized account record.
const currentUserKey = contextKey("currentUser")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetCurrentUserFromContext retrieves the sanitized account attached by the
// auth middleware.
func GetCurrentUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(currentUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
