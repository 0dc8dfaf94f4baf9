package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// VideoSvcFacade defines the minimal video lifecycle the account backend
// carries: publishing (as upload target) and watching (as history source).
type VideoSvcFacade interface {
	// PublishVideo persists a new video owned by ownerID. The media URLs
	// must already be stored; the service performs no uploads.
	PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, videoURL string, thumbnailURL string) (*domain.Video, error)

	// WatchVideo fetches a video for the viewer, bumps its view counter and
	// appends a watch-history entry.
	WatchVideo(ctx context.Context, videoID string, viewerID string) (*domain.Video, error)

	// ListVideosByOwner returns the owner's published videos, newest first.
	ListVideosByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Video, error)
}
