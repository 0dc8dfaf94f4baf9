package repositories

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// VideoReader defines read operations for videos.
type VideoReader interface {
	// FindVideoByID retrieves a video by its ID.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)

	// FindVideosByOwner retrieves the videos published by an owner, newest first.
	FindVideosByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Video, error)
}

// VideoWriter defines write operations for videos.
type VideoWriter interface {
	// SaveVideo persists a new video.
	SaveVideo(ctx context.Context, video domain.Video) error

	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, videoID string) error
}

// WatchHistoryReader defines the joined watch-history read view.
type WatchHistoryReader interface {
	// FindWatchHistory returns the user's watch entries in append order with
	// the referenced video joined in and the owner projected down. Entries
	// whose owner no longer resolves carry a nil owner rather than failing.
	FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchEntry, error)
}

// WatchHistoryWriter defines appends to the watch history.
type WatchHistoryWriter interface {
	// AppendWatchEntry records a watch. Re-watching a video moves its entry
	// to the end of the sequence.
	AppendWatchEntry(ctx context.Context, userID string, videoID string, watchedAt time.Time) error
}

// VideoRepositoryFacade combines all video-related repository interfaces.
type VideoRepositoryFacade interface {
	VideoReader
	VideoWriter
	WatchHistoryReader
	WatchHistoryWriter
}
