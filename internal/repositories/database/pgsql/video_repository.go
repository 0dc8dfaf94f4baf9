package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
)

type PgxVideoRepository struct {
	BaseRepository
}

func newPgxVideoRepository(db *pgxpool.Pool) portsrepo.VideoRepositoryFacade {
	return &PgxVideoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.VideoRepositoryFacade = (*PgxVideoRepository)(nil)

const videoColumns = `video_id, owner_id, title, description, video_url, thumbnail_url, duration_seconds, views, is_published, created_at, updated_at`

func toDomainVideo(m models.Video) domain.Video {
	return domain.Video{
		VideoID:         m.VideoID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Description:     m.Description,
		VideoURL:        m.VideoURL,
		ThumbnailURL:    m.ThumbnailURL,
		DurationSeconds: m.DurationSeconds,
		Views:           m.Views,
		IsPublished:     m.IsPublished,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var m models.Video
	err := row.Scan(
		&m.VideoID,
		&m.OwnerID,
		&m.Title,
		&m.Description,
		&m.VideoURL,
		&m.ThumbnailURL,
		&m.DurationSeconds,
		&m.Views,
		&m.IsPublished,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan video row: %w", err)
	}
	v := toDomainVideo(m)
	return &v, nil
}

func (r *PgxVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	query := `
        INSERT INTO videos (video_id, owner_id, title, description, video_url, thumbnail_url, duration_seconds, views, is_published, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		video.VideoID,
		video.OwnerID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.DurationSeconds,
		video.Views,
		video.IsPublished,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save video: %w", err)
	}
	return nil
}

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE video_id = $1;`
	video, err := scanVideo(r.Pool.QueryRow(ctx, query, videoID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find video by ID %s: %w", videoID, err)
	}
	return video, nil
}

func (r *PgxVideoRepository) FindVideosByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Video, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + videoColumns + `
        FROM videos
        WHERE owner_id = $1 AND is_published
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos by owner: %w", err)
	}
	defer rows.Close()

	videos := []domain.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *video)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", rows.Err())
	}
	return videos, nil
}

func (r *PgxVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	query := `UPDATE videos SET views = views + 1, updated_at = now() WHERE video_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("video not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// AppendWatchEntry moves a re-watched video to the end of the sequence by
// deleting any prior entry before inserting the new one, inside one
// transaction so the history never transiently loses the video.
func (r *PgxVideoRepository) AppendWatchEntry(ctx context.Context, userID string, videoID string, watchedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM watch_history WHERE user_id = $1 AND video_id = $2;`, userID, videoID); err != nil {
		return fmt.Errorf("failed to prune prior watch entry: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO watch_history (user_id, video_id, watched_at) VALUES ($1, $2, $3);`, userID, videoID, watchedAt); err != nil {
		return fmt.Errorf("failed to append watch entry: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindWatchHistory joins each entry's video and, via LEFT JOIN, the video's
// owner. A missing owner yields a nil projection, never an error.
func (r *PgxVideoRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchEntry, error) {
	query := `
        SELECT wh.entry_id, wh.watched_at,
               v.video_id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url, v.duration_seconds, v.views, v.is_published, v.created_at, v.updated_at,
               o.username, o.full_name, o.avatar_url
        FROM watch_history wh
        JOIN videos v ON v.video_id = wh.video_id
        LEFT JOIN users o ON o.user_id = v.owner_id
        WHERE wh.user_id = $1
        ORDER BY wh.entry_id;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	entries := []domain.WatchEntry{}
	for rows.Next() {
		var (
			wh             models.WatchHistoryEntry
			m              models.Video
			ownerUsername  sql.NullString
			ownerFullName  sql.NullString
			ownerAvatarURL sql.NullString
		)
		err := rows.Scan(
			&wh.EntryID,
			&wh.WatchedAt,
			&m.VideoID,
			&m.OwnerID,
			&m.Title,
			&m.Description,
			&m.VideoURL,
			&m.ThumbnailURL,
			&m.DurationSeconds,
			&m.Views,
			&m.IsPublished,
			&m.CreatedAt,
			&m.UpdatedAt,
			&ownerUsername,
			&ownerFullName,
			&ownerAvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history row: %w", err)
		}
		entry := domain.WatchEntry{
			EntryID:   wh.EntryID,
			WatchedAt: wh.WatchedAt,
			Video:     toDomainVideo(m),
		}
		if ownerUsername.Valid {
			entry.Owner = &domain.VideoOwner{
				Username:  ownerUsername.String,
				FullName:  ownerFullName.String,
				AvatarURL: ownerAvatarURL.String,
			}
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", rows.Err())
	}
	return entries, nil
}
