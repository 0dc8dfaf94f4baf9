package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// VideoHandler serves publish and watch endpoints.
type VideoHandler struct {
	videoService portssvc.VideoSvcFacade
	media        portssvc.MediaStorageSvc
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(services *portssvc.ServiceContainer) *VideoHandler {
	return &VideoHandler{
		videoService: services.Video,
		media:        services.Media,
	}
}

func registerVideoRoutes(authed *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewVideoHandler(services)

	videos := authed.Group("/videos")
	{
		videos.POST("", h.Publish)
		videos.GET("/:videoID", h.Watch)
	}
}

// Publish stores the video file and thumbnail, then persists the video
// record owned by the caller. Both files are mandatory.
func (h *VideoHandler) Publish(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	videoURL, err := storeFormFile(c, h.media, "videoFile", "videos", true)
	if err != nil {
		respondError(c, err)
		return
	}
	thumbnailURL, err := storeFormFile(c, h.media, "thumbnail", "thumbnails", true)
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := h.videoService.PublishVideo(c.Request.Context(), userID, req, videoURL, thumbnailURL)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Video published", slog.String("video_id", video.VideoID))
	c.JSON(http.StatusCreated, dto.ToVideoResponse(video))
}

// Watch returns the video, counting the view and recording it in the
// caller's watch history.
func (h *VideoHandler) Watch(c *gin.Context) {
	videoID := c.Param("videoID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	video, err := h.videoService.WatchVideo(c.Request.Context(), videoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVideoResponse(video))
}
