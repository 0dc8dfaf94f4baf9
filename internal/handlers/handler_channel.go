package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// ChannelHandler serves channel profile, subscription and watch-history
// endpoints.
type ChannelHandler struct {
	channelService portssvc.ChannelSvcFacade
	videoService   portssvc.VideoSvcFacade
	userService    portssvc.UserSvcFacade
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(services *portssvc.ServiceContainer) *ChannelHandler {
	return &ChannelHandler{
		channelService: services.Channel,
		videoService:   services.Video,
		userService:    services.User,
	}
}

func registerChannelRoutes(authed *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewChannelHandler(services)

	authed.GET("/users/watch-history", h.WatchHistory)

	channels := authed.Group("/channels")
	{
		channels.GET("/:username", h.ChannelProfile)
		channels.POST("/:username/subscription", h.ToggleSubscription)
		channels.GET("/:username/videos", h.ChannelVideos)
	}
}

// ChannelProfile returns the public channel view of the named user, with
// subscriber counts relative to the caller.
func (h *ChannelHandler) ChannelProfile(c *gin.Context) {
	username := c.Param("username")
	viewerID, _ := middleware.GetUserIDFromContext(c)

	profile, err := h.channelService.GetChannelProfile(c.Request.Context(), username, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelProfileResponse(profile))
}

// ToggleSubscription flips the caller's subscription to the named channel
// and reports the resulting state.
func (h *ChannelHandler) ToggleSubscription(c *gin.Context) {
	username := c.Param("username")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	subscribed, err := h.channelService.ToggleSubscription(c.Request.Context(), userID, username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubscriptionToggleResponse{
		ChannelUsername: username,
		Subscribed:      subscribed,
	})
}

// WatchHistory returns the caller's watch history, oldest entry first, with
// each video's owner snapshot attached where the owner still exists.
func (h *ChannelHandler) WatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	entries, err := h.channelService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWatchHistoryResponse(entries))
}

// ChannelVideos lists the published videos of the named channel.
func (h *ChannelHandler) ChannelVideos(c *gin.Context) {
	username := c.Param("username")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	owner, err := h.userService.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	videos, err := h.videoService.ListVideosByOwner(c.Request.Context(), owner.UserID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		responses = append(responses, dto.ToVideoResponse(&videos[i]))
	}
	c.JSON(http.StatusOK, responses)
}
