package models

import "time"

// Video is the database row model for a published video.
type Video struct {
	VideoID         string    `db:"video_id"`
	OwnerID         string    `db:"owner_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	VideoURL        string    `db:"video_url"`
	ThumbnailURL    string    `db:"thumbnail_url"`
	DurationSeconds float64   `db:"duration_seconds"`
	Views           int64     `db:"views"`
	IsPublished     bool      `db:"is_published"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
