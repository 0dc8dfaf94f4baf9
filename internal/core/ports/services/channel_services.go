package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ChannelSvcFacade is the relational view engine: read views computed over
// the normalized account, subscription and watch relations.
type ChannelSvcFacade interface {
	// GetChannelProfile builds the channel view for the given username as
	// seen by the viewer: subscriber counts plus the viewer's own
	// subscription flag.
	GetChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the viewer's watch entries in append order.
	// The viewer must exist; an empty history is not an error.
	GetWatchHistory(ctx context.Context, viewerID string) ([]domain.WatchEntry, error)

	// ToggleSubscription flips the subscriber->channel edge and reports the
	// resulting state (true when now subscribed).
	ToggleSubscription(ctx context.Context, subscriberID string, channelUsername string) (bool, error)
}
