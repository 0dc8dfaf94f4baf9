package domain

import "time"

// Subscription is the relation edge between two accounts: Subscriber follows
// Channel. The pair is unique in storage, but consumers count edges rather
// than assuming uniqueness.
type Subscription struct {
	SubscriberID string    `json:"subscriberID"`
	ChannelID    string    `json:"channelID"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ChannelProfile is the denormalized channel read-view: the channel account's
// public fields plus subscription aggregates relative to the current viewer.
type ChannelProfile struct {
	UserID                    string `json:"userID"`
	Username                  string `json:"username"`
	Email                     string `json:"email"`
	FullName                  string `json:"fullName"`
	AvatarURL                 string `json:"avatar"`
	CoverImageURL             string `json:"coverImage,omitempty"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}
