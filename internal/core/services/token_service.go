package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade. Session state is the single
// refresh token hash stored on the account: issuing a pair overwrites it,
// which revokes whatever session existed before.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

func (s *tokenService) IssuePair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	accessToken, err := utils.GenerateAccessJWT(
		user.UserID, user.Username, user.Email, user.FullName,
		s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %v: %w", err, apperrors.ErrInternal)
	}

	refreshToken, err := utils.GenerateRefreshJWT(
		user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %v: %w", err, apperrors.ErrInternal)
	}

	// Persist before returning: a pair must never be observable unless the
	// store accepted the rotation.
	if err := s.userService.UpdateRefreshTokenHash(ctx, user.UserID, utils.HashRefreshToken(refreshToken)); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %v: %w", err, apperrors.ErrInternal)
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  now.Add(s.cfg.AccessTokenExpiry),
		RefreshExpiresAt: now.Add(s.cfg.RefreshTokenExpiry),
	}, nil
}

func (s *tokenService) VerifyAccess(tokenString string) (string, error) {
	claims, err := utils.ParseAccessJWT(tokenString, s.cfg.AccessTokenSecret)
	if err != nil {
		return "", fmt.Errorf("invalid access token: %w", apperrors.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("access token has no subject: %w", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// Rotate validates the incoming refresh token and issues a fresh pair. The
// compare-then-overwrite on the stored hash is not transactional: two
// rotations racing with the same stale token can both pass the equality
// check. Accepted as a narrow race; the losing pair is revoked by the
// winning overwrite.
func (s *tokenService) Rotate(ctx context.Context, incomingRefreshToken string) (*domain.User, *domain.TokenPair, error) {
	claims, err := utils.ParseRefreshJWT(incomingRefreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid refresh token: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.userService.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("invalid refresh token: %w", apperrors.ErrUnauthorized)
		}
		return nil, nil, fmt.Errorf("failed to resolve refresh token subject: %w", err)
	}

	// Exact-equality against the stored value. A mismatch means the token
	// was already rotated away; the caller-visible message never says which
	// check failed.
	if !utils.CompareRefreshTokenHash(incomingRefreshToken, user.RefreshTokenHash) {
		return nil, nil, fmt.Errorf("refresh token is expired or already used: %w", apperrors.ErrUnauthorized)
	}

	pair, err := s.IssuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *tokenService) Revoke(ctx context.Context, userID string) error {
	return s.userService.ClearRefreshToken(ctx, userID)
}
