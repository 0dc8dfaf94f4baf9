package domain

import "time"

// User represents an account in the domain. Username is stored in its
// case-normalized (lowercase) form and is globally unique, as is Email.
// PasswordHash and RefreshTokenHash are sensitive and must never leave the
// service layer unredacted.
type User struct {
	UserID           string    `json:"userID"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	PasswordHash     string    `json:"-"`
	AvatarURL        string    `json:"avatar"`
	CoverImageURL    string    `json:"coverImage,omitempty"`
	RefreshTokenHash string    `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Sanitized returns a copy with credential material blanked out. Handlers and
// the auth middleware only ever see sanitized users.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshTokenHash = ""
	return u
}
