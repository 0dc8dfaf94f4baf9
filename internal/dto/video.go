package dto

import (
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// PublishVideoRequest carries the multipart form fields of a video publish.
// The video file and thumbnail are uploaded by the handler before the service
// is invoked.
type PublishVideoRequest struct {
	Title           string  `form:"title" json:"title" binding:"required"`
	Description     string  `form:"description" json:"description" binding:"required"`
	DurationSeconds float64 `form:"duration" json:"duration" binding:"required,gt=0"`
}

// VideoResponse is the public projection of a video.
type VideoResponse struct {
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
}

// ToVideoResponse converts a domain video to its response form.
func ToVideoResponse(v *domain.Video) VideoResponse {
	return VideoResponse{
		VideoID:         v.VideoID,
		OwnerID:         v.OwnerID,
		Title:           v.Title,
		Description:     v.Description,
		VideoURL:        v.VideoURL,
		ThumbnailURL:    v.ThumbnailURL,
		DurationSeconds: v.DurationSeconds,
		Views:           v.Views,
		IsPublished:     v.IsPublished,
		CreatedAt:       v.CreatedAt,
	}
}
