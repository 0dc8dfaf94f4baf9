package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
)

type PgxSubscriptionRepository struct {
	db *pgxpool.Pool
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{db: db}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

func toModelSubscription(d domain.Subscription) models.Subscription {
	return models.Subscription{
		SubscriberID: d.SubscriberID,
		ChannelID:    d.ChannelID,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	m := toModelSubscription(sub)

	// ON CONFLICT DO NOTHING keeps the edge unique without making the caller
	// care whether it already existed.
	query := `
        INSERT INTO subscriptions (subscriber_id, channel_id, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (subscriber_id, channel_id) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, m.SubscriberID, m.ChannelID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID string, channelID string) error {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2;`
	_, err := r.db.Exec(ctx, query, subscriberID, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (r *PgxSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1;`
	var count int64
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1;`
	var count int64
	if err := r.db.QueryRow(ctx, query, subscriberID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribed-to channels: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID string, channelID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2);`
	var exists bool
	if err := r.db.QueryRow(ctx, query, subscriberID, channelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription edge: %w", err)
	}
	return exists, nil
}
