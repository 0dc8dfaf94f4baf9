package dto

// RegisterUserRequest carries the multipart form fields of a registration.
// The avatar/cover image files themselves are handled by the transport layer
// and arrive at the service as already-stored media URLs.
type RegisterUserRequest struct {
	FullName string `form:"fullName" json:"fullName" binding:"required"`
	Username string `form:"username" json:"username" binding:"required,username"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=8"`
}

// LoginRequest requires a password plus at least one of username or email.
// The either-or rule is enforced in the handler, not by binding tags.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the body fallback for clients that do not send the
// refresh token cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest carries the old and new password for a change.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UpdateEmailRequest is the single-field email update.
type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}
