package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// usernameValid accepts 3-30 characters of letters, digits, underscores and
// hyphens. Uppercase passes here and is folded to lowercase by the user
// service, so "ALICE" conflicts with an existing "alice" instead of bouncing
// off validation.
func usernameValid(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 30 {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// RegisterRoutes wires every handler onto the engine. Auth routes stay
// public; everything else sits behind the access-token gate.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", usernameValid)
	}

	r.GET("/health", Health)

	registerAuthRoutes(r, cfg, services)

	authed := r.Group("/api/v1")
	authed.Use(middleware.RequireAuth(services.Token, services.User, cfg.AccessTokenCookieName))
	{
		registerUserRoutes(authed, services)
		registerChannelRoutes(authed, services)
		registerVideoRoutes(authed, services)
	}
}
