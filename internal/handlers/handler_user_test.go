package handlers_test

import (
	"bytes"
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

type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockUserSvc *MockUserService
	mockToken   *MockTokenService
	user        *domain.User
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUserSvc = new(MockUserService)
	suite.mockToken = new(MockTokenService)

	cfg := &config.Config{
		AccessTokenCookieName:  "accessToken",
		RefreshTokenCookieName: "refreshToken",
		AccessTokenExpiry:      15 * time.Minute,
		RefreshTokenExpiry:     240 * time.Hour,
	}

	services := &portssvc.ServiceContainer{
		User:    suite.mockUserSvc,
		Token:   suite.mockToken,
		Channel: new(MockChannelService),
		Video:   new(MockVideoService),
		Media:   new(MockMediaStorage),
	}

	suite.user = &domain.User{
		UserID:    uuid.NewString(),
		Username:  "testuser",
		Email:     "test@example.com",
		FullName:  "Test User",
		AvatarURL: "https://cdn.example.com/avatars/a.png",
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *UserHandlerTestSuite) authedJSONRequest(method, target string, body any) *http.Request {
	suite.mockToken.On("VerifyAccess", "user-token").Return(suite.user.UserID, nil).Once()
	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.user.UserID).Return(suite.user, nil).Once()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer user-token")
	return req
}

func (suite *UserHandlerTestSuite) TestChangePassword_Success() {
	suite.mockUserSvc.On("ChangePassword", mock.Anything, suite.user.UserID, "oldpassword", "newpassword").
		Return(nil).Once()

	req := suite.authedJSONRequest(http.MethodPatch, "/api/v1/users/change-password",
		dto.ChangePasswordRequest{OldPassword: "oldpassword", NewPassword: "newpassword"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestChangePassword_WrongOldPassword() {
	suite.mockUserSvc.On("ChangePassword", mock.Anything, suite.user.UserID, "wrongpassword", "newpassword").
		Return(apperrors.ErrUnauthorized).Once()

	req := suite.authedJSONRequest(http.MethodPatch, "/api/v1/users/change-password",
		dto.ChangePasswordRequest{OldPassword: "wrongpassword", NewPassword: "newpassword"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *UserHandlerTestSuite) TestChangePassword_ShortNewPasswordRejectedByBinding() {
	req := suite.authedJSONRequest(http.MethodPatch, "/api/v1/users/change-password",
		dto.ChangePasswordRequest{OldPassword: "oldpassword", NewPassword: "short"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestUpdateEmail_Success() {
	updated := *suite.user
	updated.Email = "new@example.com"

	suite.mockUserSvc.On("UpdateEmail", mock.Anything, suite.user.UserID, "new@example.com").
		Return(&updated, nil).Once()

	req := suite.authedJSONRequest(http.MethodPatch, "/api/v1/users/update-email",
		dto.UpdateEmailRequest{Email: "new@example.com"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("new@example.com", resp.Email)
}

func (suite *UserHandlerTestSuite) TestUpdateEmail_DuplicateConflicts() {
	suite.mockUserSvc.On("UpdateEmail", mock.Anything, suite.user.UserID, "taken@example.com").
		Return(nil, apperrors.ErrDuplicate).Once()

	req := suite.authedJSONRequest(http.MethodPatch, "/api/v1/users/update-email",
		dto.UpdateEmailRequest{Email: "taken@example.com"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateAvatar_MissingFile() {
	req := suite.authedJSONRequest(http.MethodPatch, "/api/v1/users/update-avatar", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "UpdateAvatar", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
