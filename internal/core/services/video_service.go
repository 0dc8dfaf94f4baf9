package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// videoService carries the minimal video lifecycle: publish and watch.
type videoService struct {
	BaseService
	videoRepo portsrepo.VideoRepositoryFacade
}

// NewVideoService creates a new videoService.
func NewVideoService(videoRepo portsrepo.VideoRepositoryFacade) portssvc.VideoSvcFacade {
	return &videoService{videoRepo: videoRepo}
}

func (s *videoService) PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, videoURL string, thumbnailURL string) (*domain.Video, error) {
	if videoURL == "" || thumbnailURL == "" {
		return nil, fmt.Errorf("video file and thumbnail are required: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	video := domain.Video{
		VideoID:         uuid.NewString(),
		OwnerID:         ownerID,
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        videoURL,
		ThumbnailURL:    thumbnailURL,
		DurationSeconds: req.DurationSeconds,
		IsPublished:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.videoRepo.SaveVideo(ctx, video); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Video published", slog.String("video_id", video.VideoID), slog.String("owner_id", ownerID))
	return &video, nil
}

// WatchVideo fetches the video, bumps its view counter and appends the watch
// entry for the viewer.
func (s *videoService) WatchVideo(ctx context.Context, videoID string, viewerID string) (*domain.Video, error) {
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return nil, err
	}

	if err := s.videoRepo.AppendWatchEntry(ctx, viewerID, videoID, time.Now()); err != nil {
		return nil, err
	}

	video.Views++
	return video, nil
}

func (s *videoService) ListVideosByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Video, error) {
	return s.videoRepo.FindVideosByOwner(ctx, ownerID, limit, offset)
}
