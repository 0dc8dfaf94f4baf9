package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// UserReader defines read operations for account data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their case-normalized username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByLogin retrieves a user matching the selector against either
	// the username (case-insensitive) or the email.
	FindUserByLogin(ctx context.Context, usernameOrEmail string) (*domain.User, error)
}

// UserWriter defines write operations for account data. All Update* methods
// are partial saves: they touch only the named column and never re-run
// full-record validation.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshTokenHash replaces the stored refresh token hash.
	UpdateRefreshTokenHash(ctx context.Context, userID string, refreshTokenHash string) error

	// ClearRefreshToken removes the stored refresh token hash. It is a no-op
	// when none is set.
	ClearRefreshToken(ctx context.Context, userID string) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error

	// UpdateEmail replaces the stored email.
	UpdateEmail(ctx context.Context, userID string, email string) error

	// UpdateAvatarURL replaces the avatar reference.
	UpdateAvatarURL(ctx context.Context, userID string, avatarURL string) error

	// UpdateCoverImageURL replaces the cover image reference.
	UpdateCoverImageURL(ctx context.Context, userID string, coverImageURL string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
