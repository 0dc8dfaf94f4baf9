package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, refresh_token_hash, created_at, updated_at`

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:           d.UserID,
		Username:         d.Username,
		Email:            d.Email,
		FullName:         d.FullName,
		PasswordHash:     d.PasswordHash,
		AvatarURL:        d.AvatarURL,
		CoverImageURL:    d.CoverImageURL,
		RefreshTokenHash: d.RefreshTokenHash,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:           m.UserID,
		Username:         m.Username,
		Email:            m.Email,
		FullName:         m.FullName,
		PasswordHash:     m.PasswordHash,
		AvatarURL:        m.AvatarURL,
		CoverImageURL:    m.CoverImageURL,
		RefreshTokenHash: m.RefreshTokenHash,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func scanUserRow(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.PasswordHash,
		&m.AvatarURL,
		&m.CoverImageURL,
		&m.RefreshTokenHash,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, refresh_token_hash, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.FullName,
		m.PasswordHash,
		m.AvatarURL,
		m.CoverImageURL,
		m.RefreshTokenHash,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username or email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUserRow(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = lower($1);`
	user, err := scanUserRow(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByLogin(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = lower($1) OR email = $1;`
	user, err := scanUserRow(r.db.QueryRow(ctx, query, usernameOrEmail))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by login selector: %w", err)
	}
	return user, nil
}

// partialUpdate runs a single-column UPDATE. These writes deliberately skip
// any full-record validation or re-hashing of unrelated fields.
func (r *PgxUserRepository) partialUpdate(ctx context.Context, query string, args ...any) error {
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("value already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute partial user update: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, refreshTokenHash string) error {
	query := `UPDATE users SET refresh_token_hash = $1, updated_at = now() WHERE user_id = $2;`
	return r.partialUpdate(ctx, query, refreshTokenHash, userID)
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	// Idempotent: clearing an absent session or a deleted user is a no-op.
	query := `UPDATE users SET refresh_token_hash = '', updated_at = now() WHERE user_id = $1;`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = now() WHERE user_id = $2;`
	return r.partialUpdate(ctx, query, passwordHash, userID)
}

func (r *PgxUserRepository) UpdateEmail(ctx context.Context, userID string, email string) error {
	query := `UPDATE users SET email = $1, updated_at = now() WHERE user_id = $2;`
	return r.partialUpdate(ctx, query, email, userID)
}

func (r *PgxUserRepository) UpdateAvatarURL(ctx context.Context, userID string, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $1, updated_at = now() WHERE user_id = $2;`
	return r.partialUpdate(ctx, query, avatarURL, userID)
}

func (r *PgxUserRepository) UpdateCoverImageURL(ctx context.Context, userID string, coverImageURL string) error {
	query := `UPDATE users SET cover_image_url = $1, updated_at = now() WHERE user_id = $2;`
	return r.partialUpdate(ctx, query, coverImageURL, userID)
}
