package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/handlers"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

type ChannelHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockUserSvc *MockUserService
	mockToken   *MockTokenService
	mockChannel *MockChannelService
	mockVideo   *MockVideoService
	viewer      *domain.User
}

func (suite *ChannelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUserSvc = new(MockUserService)
	suite.mockToken = new(MockTokenService)
	suite.mockChannel = new(MockChannelService)
	suite.mockVideo = new(MockVideoService)

	cfg := &config.Config{
		AccessTokenCookieName:  "accessToken",
		RefreshTokenCookieName: "refreshToken",
		AccessTokenExpiry:      15 * time.Minute,
		RefreshTokenExpiry:     240 * time.Hour,
	}

	services := &portssvc.ServiceContainer{
		User:    suite.mockUserSvc,
		Token:   suite.mockToken,
		Channel: suite.mockChannel,
		Video:   suite.mockVideo,
		Media:   new(MockMediaStorage),
	}

	suite.viewer = &domain.User{
		UserID:   uuid.NewString(),
		Username: "viewer",
		Email:    "viewer@example.com",
		FullName: "The Viewer",
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// authedRequest builds a request carrying a valid access token for the
// suite's viewer and primes the auth middleware mocks.
func (suite *ChannelHandlerTestSuite) authedRequest(method, target string) *http.Request {
	suite.mockToken.On("VerifyAccess", "viewer-token").Return(suite.viewer.UserID, nil).Once()
	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.viewer.UserID).Return(suite.viewer, nil).Once()

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	return req
}

func (suite *ChannelHandlerTestSuite) TestChannelProfile() {
	profile := &domain.ChannelProfile{
		UserID:                    uuid.NewString(),
		Username:                  "chaiaurcode",
		FullName:                  "Chai Aur Code",
		SubscribersCount:          42,
		ChannelsSubscribedToCount: 7,
		IsSubscribed:              true,
	}

	suite.mockChannel.On("GetChannelProfile", mock.Anything, "chaiaurcode", suite.viewer.UserID).
		Return(profile, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/channels/chaiaurcode")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ChannelProfileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("chaiaurcode", resp.Username)
	suite.Equal(int64(42), resp.SubscribersCount)
	suite.True(resp.IsSubscribed)
}

func (suite *ChannelHandlerTestSuite) TestChannelProfile_NotFound() {
	suite.mockChannel.On("GetChannelProfile", mock.Anything, "ghost", suite.viewer.UserID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/channels/ghost")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ChannelHandlerTestSuite) TestToggleSubscription() {
	suite.mockChannel.On("ToggleSubscription", mock.Anything, suite.viewer.UserID, "chaiaurcode").
		Return(true, nil).Once()

	req := suite.authedRequest(http.MethodPost, "/api/v1/channels/chaiaurcode/subscription")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SubscriptionToggleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Subscribed)
	suite.Equal("chaiaurcode", resp.ChannelUsername)
}

func (suite *ChannelHandlerTestSuite) TestToggleSubscription_SelfRejected() {
	suite.mockChannel.On("ToggleSubscription", mock.Anything, suite.viewer.UserID, "viewer").
		Return(false, apperrors.ErrValidation).Once()

	req := suite.authedRequest(http.MethodPost, "/api/v1/channels/viewer/subscription")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ChannelHandlerTestSuite) TestWatchHistory() {
	entries := []domain.WatchEntry{
		{
			EntryID:   1,
			WatchedAt: time.Now().Add(-time.Hour),
			Video:     domain.Video{VideoID: "v1", Title: "first"},
			Owner:     &domain.VideoOwner{Username: "alice", FullName: "Alice"},
		},
		{
			EntryID:   4,
			WatchedAt: time.Now(),
			Video:     domain.Video{VideoID: "v2", Title: "second"},
			Owner:     nil,
		},
	}

	suite.mockChannel.On("GetWatchHistory", mock.Anything, suite.viewer.UserID).
		Return(entries, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/users/watch-history")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.WatchHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Entries, 2)
	suite.Equal("v1", resp.Entries[0].Video.VideoID)
	suite.NotNil(resp.Entries[0].Owner)
	suite.Nil(resp.Entries[1].Owner)
}

func (suite *ChannelHandlerTestSuite) TestChannelVideos() {
	owner := &domain.User{UserID: uuid.NewString(), Username: "chaiaurcode"}
	videos := []domain.Video{
		{VideoID: "v2", Title: "newest"},
		{VideoID: "v1", Title: "older"},
	}

	suite.mockUserSvc.On("GetUserByUsername", mock.Anything, "chaiaurcode").Return(owner, nil).Once()
	suite.mockVideo.On("ListVideosByOwner", mock.Anything, owner.UserID, 20, 0).Return(videos, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/channels/chaiaurcode/videos")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.VideoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("v2", resp[0].VideoID)
}

func (suite *ChannelHandlerTestSuite) TestWatchVideo() {
	video := &domain.Video{VideoID: "v1", Title: "first", Views: 11}

	suite.mockVideo.On("WatchVideo", mock.Anything, "v1", suite.viewer.UserID).Return(video, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/videos/v1")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.VideoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(11), resp.Views)
}

func TestChannelHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChannelHandlerTestSuite))
}
