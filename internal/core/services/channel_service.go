package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

// channelService is the relational view engine: it composes the count and
// existence queries of the subscription repository and the joined watch
// history into the two read views.
type channelService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	subRepo  portsrepo.SubscriptionRepositoryFacade
	vidRepo  portsrepo.VideoRepositoryFacade
}

// NewChannelService creates a new channelService.
func NewChannelService(
	userRepo portsrepo.UserRepositoryFacade,
	subRepo portsrepo.SubscriptionRepositoryFacade,
	vidRepo portsrepo.VideoRepositoryFacade,
) portssvc.ChannelSvcFacade {
	return &channelService{
		userRepo: userRepo,
		subRepo:  subRepo,
		vidRepo:  vidRepo,
	}
}

func (s *channelService) GetChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error) {
	channel, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subRepo.CountSubscribers(ctx, channel.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribers for channel %s: %w", channel.UserID, err)
	}

	subscribedTo, err := s.subRepo.CountSubscribedTo(ctx, channel.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions for channel %s: %w", channel.UserID, err)
	}

	isSubscribed := false
	if viewerID != "" {
		isSubscribed, err = s.subRepo.IsSubscribed(ctx, viewerID, channel.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check viewer subscription: %w", err)
		}
	}

	return &domain.ChannelProfile{
		UserID:                    channel.UserID,
		Username:                  channel.Username,
		Email:                     channel.Email,
		FullName:                  channel.FullName,
		AvatarURL:                 channel.AvatarURL,
		CoverImageURL:             channel.CoverImageURL,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

func (s *channelService) GetWatchHistory(ctx context.Context, viewerID string) ([]domain.WatchEntry, error) {
	// Only an entirely missing viewer is an error; empty joins inside the
	// history are tolerated by the repository.
	if _, err := s.userRepo.FindUserByID(ctx, viewerID); err != nil {
		return nil, err
	}
	return s.vidRepo.FindWatchHistory(ctx, viewerID)
}

func (s *channelService) ToggleSubscription(ctx context.Context, subscriberID string, channelUsername string) (bool, error) {
	channel, err := s.userRepo.FindUserByUsername(ctx, channelUsername)
	if err != nil {
		return false, err
	}

	if channel.UserID == subscriberID {
		return false, fmt.Errorf("cannot subscribe to your own channel: %w", apperrors.ErrValidation)
	}

	subscribed, err := s.subRepo.IsSubscribed(ctx, subscriberID, channel.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription edge: %w", err)
	}

	if subscribed {
		if err := s.subRepo.DeleteSubscription(ctx, subscriberID, channel.UserID); err != nil {
			return false, err
		}
		s.LogInfo(ctx, "Unsubscribed", slog.String("subscriber_id", subscriberID), slog.String("channel_id", channel.UserID))
		return false, nil
	}

	sub := domain.Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channel.UserID,
		CreatedAt:    time.Now(),
	}
	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		return false, err
	}
	s.LogInfo(ctx, "Subscribed", slog.String("subscriber_id", subscriberID), slog.String("channel_id", channel.UserID))
	return true, nil
}
