package models

import (
	"time"
)

// User is the database row model for an account.
// refresh_token_hash holds the SHA256 of the single currently honored refresh
// token; empty string means no active session.
type User struct {
	UserID           string    `db:"user_id"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	FullName         string    `db:"full_name"`
	PasswordHash     string    `db:"password_hash"`
	AvatarURL        string    `db:"avatar_url"`
	CoverImageURL    string    `db:"cover_image_url"`
	RefreshTokenHash string    `db:"refresh_token_hash"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
