package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/core/services"
)

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
	CountSubscribersFn   func(ctx context.Context, channelID string) (int64, error)
	CountSubscribedToFn  func(ctx context.Context, subscriberID string) (int64, error)
	IsSubscribedFn       func(ctx context.Context, subscriberID string, channelID string) (bool, error)
	SaveSubscriptionFn   func(ctx context.Context, sub domain.Subscription) error
	DeleteSubscriptionFn func(ctx context.Context, subscriberID string, channelID string) error
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	if m.CountSubscribersFn != nil {
		return m.CountSubscribersFn(ctx, channelID)
	}
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	if m.CountSubscribedToFn != nil {
		return m.CountSubscribedToFn(ctx, subscriberID)
	}
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID string, channelID string) (bool, error) {
	if m.IsSubscribedFn != nil {
		return m.IsSubscribedFn(ctx, subscriberID, channelID)
	}
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, sub domain.Subscription) error {
	if m.SaveSubscriptionFn != nil {
		return m.SaveSubscriptionFn(ctx, sub)
	}
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID string, channelID string) error {
	if m.DeleteSubscriptionFn != nil {
		return m.DeleteSubscriptionFn(ctx, subscriberID, channelID)
	}
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

// --- Mock VideoRepository ---
type MockVideoRepository struct {
	mock.Mock
	FindVideoByIDFn     func(ctx context.Context, videoID string) (*domain.Video, error)
	FindVideosByOwnerFn func(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Video, error)
	SaveVideoFn         func(ctx context.Context, video domain.Video) error
	IncrementViewsFn    func(ctx context.Context, videoID string) error
	FindWatchHistoryFn  func(ctx context.Context, userID string) ([]domain.WatchEntry, error)
	AppendWatchEntryFn  func(ctx context.Context, userID string, videoID string, watchedAt time.Time) error
}

func (m *MockVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	if m.FindVideoByIDFn != nil {
		return m.FindVideoByIDFn(ctx, videoID)
	}
	args := m.Called(ctx, videoID)
	var video *domain.Video
	if args.Get(0) != nil {
		video = args.Get(0).(*domain.Video)
	}
	return video, args.Error(1)
}

func (m *MockVideoRepository) FindVideosByOwner(ctx context.Context, ownerID string, limit int, offset int) ([]domain.Video, error) {
	if m.FindVideosByOwnerFn != nil {
		return m.FindVideosByOwnerFn(ctx, ownerID, limit, offset)
	}
	args := m.Called(ctx, ownerID, limit, offset)
	var videos []domain.Video
	if args.Get(0) != nil {
		videos = args.Get(0).([]domain.Video)
	}
	return videos, args.Error(1)
}

func (m *MockVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	if m.SaveVideoFn != nil {
		return m.SaveVideoFn(ctx, video)
	}
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, videoID string) error {
	if m.IncrementViewsFn != nil {
		return m.IncrementViewsFn(ctx, videoID)
	}
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchEntry, error) {
	if m.FindWatchHistoryFn != nil {
		return m.FindWatchHistoryFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var entries []domain.WatchEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WatchEntry)
	}
	return entries, args.Error(1)
}

func (m *MockVideoRepository) AppendWatchEntry(ctx context.Context, userID string, videoID string, watchedAt time.Time) error {
	if m.AppendWatchEntryFn != nil {
		return m.AppendWatchEntryFn(ctx, userID, videoID, watchedAt)
	}
	args := m.Called(ctx, userID, videoID, watchedAt)
	return args.Error(0)
}

// --- Test Suite ---
type ChannelServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockSubRepo  *MockSubscriptionRepository
	mockVidRepo  *MockVideoRepository
	service      portssvc.ChannelSvcFacade
}

func (suite *ChannelServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.mockVidRepo = new(MockVideoRepository)
	suite.service = services.NewChannelService(suite.mockUserRepo, suite.mockSubRepo, suite.mockVidRepo)
}

func (suite *ChannelServiceTestSuite) channel() *domain.User {
	return &domain.User{
		UserID:    uuid.NewString(),
		Username:  "chaiaurcode",
		Email:     "chai@example.com",
		FullName:  "Chai Aur Code",
		AvatarURL: "https://cdn.example.com/avatars/c.png",
	}
}

// --- GetChannelProfile Tests ---

func (suite *ChannelServiceTestSuite) TestGetChannelProfile_WithViewer() {
	ctx := context.Background()
	channel := suite.channel()
	viewerID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "chaiaurcode").Return(channel, nil).Once()
	suite.mockSubRepo.On("CountSubscribers", ctx, channel.UserID).Return(int64(42), nil).Once()
	suite.mockSubRepo.On("CountSubscribedTo", ctx, channel.UserID).Return(int64(7), nil).Once()
	suite.mockSubRepo.On("IsSubscribed", ctx, viewerID, channel.UserID).Return(true, nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "chaiaurcode", viewerID)

	suite.Require().NoError(err)
	suite.Equal(channel.Username, profile.Username)
	suite.Equal(int64(42), profile.SubscribersCount)
	suite.Equal(int64(7), profile.ChannelsSubscribedToCount)
	suite.True(profile.IsSubscribed)
}

func (suite *ChannelServiceTestSuite) TestGetChannelProfile_AnonymousViewerSkipsEdgeCheck() {
	ctx := context.Background()
	channel := suite.channel()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "chaiaurcode").Return(channel, nil).Once()
	suite.mockSubRepo.On("CountSubscribers", ctx, channel.UserID).Return(int64(0), nil).Once()
	suite.mockSubRepo.On("CountSubscribedTo", ctx, channel.UserID).Return(int64(0), nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "chaiaurcode", "")

	suite.Require().NoError(err)
	suite.False(profile.IsSubscribed)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "IsSubscribed", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChannelServiceTestSuite) TestGetChannelProfile_ChannelNotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "ghost", uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ToggleSubscription Tests ---

func (suite *ChannelServiceTestSuite) TestToggleSubscription_SubscribesWhenNoEdge() {
	ctx := context.Background()
	channel := suite.channel()
	subscriberID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "chaiaurcode").Return(channel, nil).Once()
	suite.mockSubRepo.On("IsSubscribed", ctx, subscriberID, channel.UserID).Return(false, nil).Once()
	suite.mockSubRepo.On("SaveSubscription", ctx, mock.MatchedBy(func(sub domain.Subscription) bool {
		return sub.SubscriberID == subscriberID && sub.ChannelID == channel.UserID
	})).Return(nil).Once()

	subscribed, err := suite.service.ToggleSubscription(ctx, subscriberID, "chaiaurcode")

	suite.Require().NoError(err)
	suite.True(subscribed)
}

func (suite *ChannelServiceTestSuite) TestToggleSubscription_UnsubscribesWhenEdgeExists() {
	ctx := context.Background()
	channel := suite.channel()
	subscriberID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "chaiaurcode").Return(channel, nil).Once()
	suite.mockSubRepo.On("IsSubscribed", ctx, subscriberID, channel.UserID).Return(true, nil).Once()
	suite.mockSubRepo.On("DeleteSubscription", ctx, subscriberID, channel.UserID).Return(nil).Once()

	subscribed, err := suite.service.ToggleSubscription(ctx, subscriberID, "chaiaurcode")

	suite.Require().NoError(err)
	suite.False(subscribed)
}

func (suite *ChannelServiceTestSuite) TestToggleSubscription_SelfSubscribeRejected() {
	ctx := context.Background()
	channel := suite.channel()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "chaiaurcode").Return(channel, nil).Once()

	subscribed, err := suite.service.ToggleSubscription(ctx, channel.UserID, "chaiaurcode")

	suite.Require().Error(err)
	suite.False(subscribed)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "SaveSubscription", mock.Anything, mock.Anything)
	suite.mockSubRepo.AssertNotCalled(suite.T(), "DeleteSubscription", mock.Anything, mock.Anything, mock.Anything)
}

// --- GetWatchHistory Tests ---

func (suite *ChannelServiceTestSuite) TestGetWatchHistory_ViewerMustExist() {
	ctx := context.Background()
	viewerID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, viewerID).Return(nil, apperrors.ErrNotFound).Once()

	entries, err := suite.service.GetWatchHistory(ctx, viewerID)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVidRepo.AssertNotCalled(suite.T(), "FindWatchHistory", mock.Anything, mock.Anything)
}

func (suite *ChannelServiceTestSuite) TestGetWatchHistory_PreservesAppendOrder() {
	ctx := context.Background()
	viewer := suite.channel()

	history := []domain.WatchEntry{
		{EntryID: 1, Video: domain.Video{VideoID: "v1"}, Owner: &domain.VideoOwner{Username: "alice"}},
		{EntryID: 5, Video: domain.Video{VideoID: "v2"}, Owner: nil},
		{EntryID: 9, Video: domain.Video{VideoID: "v3"}, Owner: &domain.VideoOwner{Username: "bob"}},
	}

	suite.mockUserRepo.On("FindUserByID", ctx, viewer.UserID).Return(viewer, nil).Once()
	suite.mockVidRepo.On("FindWatchHistory", ctx, viewer.UserID).Return(history, nil).Once()

	entries, err := suite.service.GetWatchHistory(ctx, viewer.UserID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal(int64(1), entries[0].EntryID)
	suite.Equal(int64(9), entries[2].EntryID)
	suite.Nil(entries[1].Owner, "a vanished owner yields a nil owner, not an error")
}

func (suite *ChannelServiceTestSuite) TestGetWatchHistory_EmptyIsNotAnError() {
	ctx := context.Background()
	viewer := suite.channel()

	suite.mockUserRepo.On("FindUserByID", ctx, viewer.UserID).Return(viewer, nil).Once()
	suite.mockVidRepo.On("FindWatchHistory", ctx, viewer.UserID).Return([]domain.WatchEntry{}, nil).Once()

	entries, err := suite.service.GetWatchHistory(ctx, viewer.UserID)

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func TestChannelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChannelServiceTestSuite))
}
