package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// AuthHandler handles registration and the session lifecycle endpoints.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	media        portssvc.MediaStorageSvc
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		userService:  services.User,
		tokenService: services.Token,
		media:        services.Media,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public and session routes under /users.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)

	// 5 login attempts per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	loginLimiter := limiter.New(memory.NewStore(), rate)

	users := r.Group("/api/v1/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		users.POST("/refresh-token", h.RefreshToken)
		users.POST("/logout", middleware.RequireAuth(services.Token, services.User, cfg.AccessTokenCookieName), h.Logout)
	}
}

// Register creates a new account. Duplicate username/email is rejected
// before any file leaves the request, so a conflicting registration never
// orphans an object in media storage. The avatar is mandatory and must be
// stored before the account row is written; an upload failure therefore
// never leaves a partial account behind either.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	if err := h.userService.CheckAvailability(c.Request.Context(), req.Username, req.Email); err != nil {
		respondError(c, err)
		return
	}

	avatarURL, err := storeFormFile(c, h.media, "avatar", "avatars", true)
	if err != nil {
		respondError(c, err)
		return
	}
	coverImageURL, err := storeFormFile(c, h.media, "coverImage", "covers", false)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req, avatarURL, coverImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login authenticates with username or email plus password, issues a token
// pair and sets both tokens as http-only secure cookies.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	selector := req.Username
	if selector == "" {
		selector = req.Email
	}
	if selector == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "please provide username or email"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), selector, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user does not exist"})
			return
		}
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssuePair(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	// Re-read after token persistence so the response reflects committed
	// state rather than the pre-login snapshot.
	loggedIn, err := h.userService.GetUserByID(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	sanitized := loggedIn.Sanitized()

	h.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(&sanitized),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout revokes the stored refresh token and clears both cookies. Calling
// it again after the session is gone only re-clears the cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	if err := h.tokenService.Revoke(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.clearTokenCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "user logged out"})
}

// RefreshToken rotates the session: it accepts the incoming refresh token
// from the cookie or the body and responds with a fresh pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	incoming, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || incoming == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			incoming = req.RefreshToken
		}
	}
	if incoming == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized request"})
		return
	}

	_, pair, err := h.tokenService.Rotate(c.Request.Context(), incoming)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AccessTokenCookieName, accessToken, int(h.cfg.AccessTokenExpiry/time.Second), "/", "", true, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, int(h.cfg.RefreshTokenExpiry/time.Second), "/", "", true, true)
}

func (h *AuthHandler) clearTokenCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AccessTokenCookieName, "", -1, "/", "", true, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, "/", "", true, true)
}
