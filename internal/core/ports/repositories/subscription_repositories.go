package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// SubscriptionReader defines the aggregate queries the view engine composes.
// Counts are computed over edges; callers must not assume pair uniqueness.
type SubscriptionReader interface {
	// CountSubscribers returns the number of edges pointing at the channel.
	CountSubscribers(ctx context.Context, channelID string) (int64, error)

	// CountSubscribedTo returns the number of edges originating from the subscriber.
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)

	// IsSubscribed reports whether a subscriber->channel edge exists.
	IsSubscribed(ctx context.Context, subscriberID string, channelID string) (bool, error)
}

// SubscriptionWriter defines edge creation and destruction.
type SubscriptionWriter interface {
	// SaveSubscription persists an edge. Saving an existing pair is a no-op.
	SaveSubscription(ctx context.Context, sub domain.Subscription) error

	// DeleteSubscription removes an edge. Deleting a missing pair is a no-op.
	DeleteSubscription(ctx context.Context, subscriberID string, channelID string) error
}

// SubscriptionRepositoryFacade combines all subscription repository interfaces.
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
