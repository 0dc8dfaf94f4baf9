package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// UserHandler serves the authenticated account-management endpoints.
type UserHandler struct {
	userService portssvc.UserSvcFacade
	media       portssvc.MediaStorageSvc
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(services *portssvc.ServiceContainer) *UserHandler {
	return &UserHandler{
		userService: services.User,
		media:       services.Media,
	}
}

func registerUserRoutes(authed *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewUserHandler(services)

	users := authed.Group("/users")
	{
		users.GET("/current-user", h.CurrentUser)
		users.PATCH("/change-password", h.ChangePassword)
		users.PATCH("/update-email", h.UpdateEmail)
		users.PATCH("/update-avatar", h.UpdateAvatar)
		users.PATCH("/update-cover-image", h.UpdateCoverImage)
	}
}

// CurrentUser returns the caller's own profile.
func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword verifies the old password before storing the new one.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
}

// UpdateEmail stores a new email address for the caller.
func (h *UserHandler) UpdateEmail(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	var req dto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateEmail(c.Request.Context(), userID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateAvatar uploads the new avatar and swaps the stored URL.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", "avatars", h.userService.UpdateAvatar)
}

// UpdateCoverImage uploads the new cover image and swaps the stored URL.
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", "covers", h.userService.UpdateCoverImage)
}

func (h *UserHandler) updateImage(c *gin.Context, field, folder string, apply func(ctx context.Context, userID, url string) (*domain.User, error)) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	url, err := storeFormFile(c, h.media, field, folder, true)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := apply(c.Request.Context(), userID, url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
