package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ChannelProfileResponse is the channel read-view projection. The field set
// is a fixed whitelist; credential material is structurally absent.
type ChannelProfileResponse struct {
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

// ToChannelProfileResponse converts the domain view to its response form.
func ToChannelProfileResponse(p *domain.ChannelProfile) ChannelProfileResponse {
	return ChannelProfileResponse{
		UserID:                    p.UserID,
		Username:                  p.Username,
		Email:                     p.Email,
		FullName:                  p.FullName,
		AvatarURL:                 p.AvatarURL,
		CoverImageURL:             p.CoverImageURL,
		SubscribersCount:          p.SubscribersCount,
		ChannelsSubscribedToCount: p.ChannelsSubscribedToCount,
		IsSubscribed:              p.IsSubscribed,
	}
}

// SubscriptionToggleResponse reports the state of the edge after a toggle.
type SubscriptionToggleResponse struct {
	ChannelUsername string `json:"channelUsername"`
	Subscribed      bool   `json:"subscribed"`
}

// WatchEntryResponse is one watch-history element with its owner collapsed to
// a single projected object (absent when the owner no longer resolves).
type WatchEntryResponse struct {
	EntryID   int64              `json:"entryID"`
	WatchedAt time.Time          `json:"watchedAt"`
	Video     VideoResponse      `json:"video"`
	Owner     *domain.VideoOwner `json:"owner,omitempty"`
}

// WatchHistoryResponse wraps the ordered watch history.
type WatchHistoryResponse struct {
	Entries []WatchEntryResponse `json:"entries"`
}

// ToWatchHistoryResponse converts domain watch entries, preserving order.
func ToWatchHistoryResponse(entries []domain.WatchEntry) WatchHistoryResponse {
	out := make([]WatchEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = WatchEntryResponse{
			EntryID:   e.EntryID,
			WatchedAt: e.WatchedAt,
			Video:     ToVideoResponse(&e.Video),
			Owner:     e.Owner,
		}
	}
	return WatchHistoryResponse{Entries: out}
}
