package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// UserReaderSvc defines read operations for account data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username (case-insensitive).
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CheckAvailability reports ErrDuplicate when the username or email is
	// already taken. Callers use it to fail fast before doing work that is
	// expensive to undo, like media uploads.
	CheckAvailability(ctx context.Context, username string, email string) error
}

// UserWriterSvc defines write operations for account data.
type UserWriterSvc interface {
	// Register creates a new account from validated registration fields and
	// already-stored media references. The avatar reference is mandatory.
	Register(ctx context.Context, req dto.RegisterUserRequest, avatarURL string, coverImageURL string) (*domain.User, error)

	// UpdateRefreshTokenHash stores the hash of the currently honored refresh
	// token. A partial save: no other field is validated or touched.
	UpdateRefreshTokenHash(ctx context.Context, userID string, refreshTokenHash string) error

	// ClearRefreshToken clears the stored refresh token hash (idempotent).
	ClearRefreshToken(ctx context.Context, userID string) error

	// ChangePassword verifies the old password and stores the hash of the new
	// one. Outstanding tokens are not revoked.
	ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error

	// UpdateEmail replaces the account's email.
	UpdateEmail(ctx context.Context, userID string, email string) (*domain.User, error)

	// UpdateAvatar replaces the avatar reference with an already-stored URL.
	UpdateAvatar(ctx context.Context, userID string, avatarURL string) (*domain.User, error)

	// UpdateCoverImage replaces the cover image reference with an
	// already-stored URL.
	UpdateCoverImage(ctx context.Context, userID string, coverImageURL string) (*domain.User, error)
}

// UserAuthSvc defines credential verification.
type UserAuthSvc interface {
	// Authenticate resolves the selector against username or email and checks
	// the password. A missing account surfaces as ErrNotFound, a wrong
	// password as ErrUnauthorized.
	Authenticate(ctx context.Context, usernameOrEmail string, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
