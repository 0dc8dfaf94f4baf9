package domain

import "time"

// Video is the minimal video entity the account backend needs: a join target
// for watch history, owned by a user.
type Video struct {
	VideoID         string    `json:"videoID"`
	OwnerID         string    `json:"ownerID"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	VideoURL        string    `json:"videoFile"`
	ThumbnailURL    string    `json:"thumbnail"`
	DurationSeconds float64   `json:"duration"`
	Views           int64     `json:"views"`
	IsPublished     bool      `json:"isPublished"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// VideoOwner is the projection of a video's owner used inside watch history
// entries: only the public identity fields, never credentials.
type VideoOwner struct {
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatar"`
}

// WatchEntry is one element of a user's ordered watch history, with the
// referenced video joined in and the owner collapsed to a single projection.
// Owner is nil when the owning account no longer resolves.
type WatchEntry struct {
	EntryID   int64       `json:"entryID"`
	WatchedAt time.Time   `json:"watchedAt"`
	Video     Video       `json:"video"`
	Owner     *VideoOwner `json:"owner,omitempty"`
}
