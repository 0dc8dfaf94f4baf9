package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

// RequireAuth gates requests behind a valid access token. The token is taken
// from the access-token cookie or the Authorization header; the embedded
// subject is then resolved against the account store and the sanitized record
// is attached to the request context. The middleware never mutates state.
func RequireAuth(tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserSvcFacade, accessCookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractAccessToken(c, accessCookieName)
		if tokenString == "" {
			logger.Warn("Access token missing from cookie and Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized request"})
			return
		}

		userID, err := tokenSvc.VerifyAccess(tokenString)
		if err != nil {
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer exists", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
				return
			}
			logger.Error("Failed to resolve token subject", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}

		sanitized := user.Sanitized()

		ctx := context.WithValue(c.Request.Context(), userIDKey, sanitized.UserID)
		ctx = context.WithValue(ctx, currentUserKey, &sanitized)

		enrichedLogger := logger.With(slog.String("user_id", sanitized.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractAccessToken prefers the cookie and falls back to a bearer header.
func extractAccessToken(c *gin.Context, accessCookieName string) string {
	if cookie, err := c.Cookie(accessCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
