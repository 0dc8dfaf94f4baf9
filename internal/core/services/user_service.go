package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

// userService is the credential store: it owns account creation, password
// verification and the field-level partial updates.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest, avatarURL string, coverImageURL string) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if fullName == "" || username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required: %w", apperrors.ErrValidation)
	}
	if avatarURL == "" {
		return nil, fmt.Errorf("avatar is required: %w", apperrors.ErrValidation)
	}

	if err := s.CheckAvailability(ctx, username, email); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      username,
		Email:         email,
		FullName:      fullName,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The unique constraints remain the final arbiter: a racing duplicate
	// surfaces here as ErrDuplicate.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// GetUserByID returns the full account record, credential hashes included.
// Callers that hand the record outward must sanitize it first.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// CheckAvailability folds the username before looking it up, so "ALICE"
// conflicts with an existing "alice" instead of slipping past the check.
func (s *userService) CheckAvailability(ctx context.Context, username string, email string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.TrimSpace(email)

	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return fmt.Errorf("username already taken: %w", apperrors.ErrDuplicate)
	}
	if _, err := s.userRepo.FindUserByLogin(ctx, email); err == nil {
		return fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
	}
	return nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
}

func (s *userService) Authenticate(ctx context.Context, usernameOrEmail string, password string) (*domain.User, error) {
	selector := strings.TrimSpace(usernameOrEmail)
	if selector == "" {
		return nil, fmt.Errorf("username or email is required: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByLogin(ctx, selector)
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid user credentials: %w", apperrors.ErrUnauthorized)
	}

	return user, nil
}

func (s *userService) UpdateRefreshTokenHash(ctx context.Context, userID string, refreshTokenHash string) error {
	return s.userRepo.UpdateRefreshTokenHash(ctx, userID, refreshTokenHash)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

func (s *userService) ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error {
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("old and new password are required: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("old password is incorrect: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// Partial save: only the hash column changes, outstanding tokens stay
	// valid until natural expiry.
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

func (s *userService) UpdateEmail(ctx context.Context, userID string, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if err := s.userRepo.UpdateEmail(ctx, userID, email); err != nil {
		return nil, err
	}
	return s.reloadSanitized(ctx, userID)
}

func (s *userService) UpdateAvatar(ctx context.Context, userID string, avatarURL string) (*domain.User, error) {
	if avatarURL == "" {
		return nil, fmt.Errorf("avatar reference is required: %w", apperrors.ErrValidation)
	}
	if err := s.userRepo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		return nil, err
	}
	return s.reloadSanitized(ctx, userID)
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID string, coverImageURL string) (*domain.User, error) {
	if coverImageURL == "" {
		return nil, fmt.Errorf("cover image reference is required: %w", apperrors.ErrValidation)
	}
	if err := s.userRepo.UpdateCoverImageURL(ctx, userID, coverImageURL); err != nil {
		return nil, err
	}
	return s.reloadSanitized(ctx, userID)
}

// reloadSanitized re-reads the record after a partial update so responses
// reflect the committed state.
func (s *userService) reloadSanitized(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}
