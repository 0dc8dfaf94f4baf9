package models

import "time"

// Subscription is the database row model for a subscriber->channel edge.
type Subscription struct {
	SubscriberID string    `db:"subscriber_id"`
	ChannelID    string    `db:"channel_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// WatchHistoryEntry is the database row model for one append to a user's
// watch history. EntryID provides the append order.
type WatchHistoryEntry struct {
	EntryID   int64     `db:"entry_id"`
	UserID    string    `db:"user_id"`
	VideoID   string    `db:"video_id"`
	WatchedAt time.Time `db:"watched_at"`
}
