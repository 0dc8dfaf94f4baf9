package domain

import "time"

// TokenPair is a freshly issued access/refresh token pair. The refresh value
// is returned to the caller exactly once; the store only keeps its hash.
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}
