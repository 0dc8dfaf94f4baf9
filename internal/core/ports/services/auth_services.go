package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// TokenSvcFacade defines the session/token lifecycle: issuance, offline
// verification, rotation and revocation. At most one refresh token per
// account is honored at a time.
type TokenSvcFacade interface {
	// IssuePair generates an access/refresh pair for the user and persists
	// the refresh token hash on the account before returning. Overwriting the
	// stored hash implicitly revokes any prior refresh token.
	IssuePair(ctx context.Context, user *domain.User) (*domain.TokenPair, error)

	// VerifyAccess validates an access token offline (signature and expiry)
	// and returns the subject user ID. Any failure is ErrUnauthorized.
	VerifyAccess(tokenString string) (string, error)

	// Rotate validates an incoming refresh token, requires exact equality
	// with the account's stored value, and issues a fresh pair. Every failure
	// mode is ErrUnauthorized; callers must not distinguish them.
	Rotate(ctx context.Context, incomingRefreshToken string) (*domain.User, *domain.TokenPair, error)

	// Revoke clears the account's stored refresh token (idempotent).
	Revoke(ctx context.Context, userID string) error
}
