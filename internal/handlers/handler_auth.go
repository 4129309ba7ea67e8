package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/dto"
	"github.com/tajuwa/clickbit_backend/internal/middleware"
	"github.com/tajuwa/clickbit_backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a local account, signs it in and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "An error occurred during registration")
		return
	}

	setSessionCookie(c, h.cfg, token)
	logger.Info("New user registered", slog.String("user_id", user.UserID), slog.String("email", user.Email))

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    dto.ToUserResponse(user),
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password are required"})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Authentication attempt failed",
			slog.String("event_type", "auth_attempt"),
			slog.String("email", req.Email),
			slog.String("ip_address", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)
		writeServiceError(c, logger, err, "An error occurred during login")
		return
	}

	setSessionCookie(c, h.cfg, token)
	logger.Info("Authentication attempt succeeded",
		slog.String("event_type", "auth_attempt"),
		slog.String("email", user.Email),
		slog.String("ip_address", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
	)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.ToUserResponse(user),
	})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a session
// @Description Validates the Google identity, creating the account on first sight, and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/auth/google/exchange-code [post]
func (h *AuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	user, token, err := h.authService.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		writeServiceError(c, logger, err, "An error occurred during Google sign-in")
		return
	}

	setSessionCookie(c, h.cfg, token)
	logger.Info("Authentication attempt succeeded",
		slog.String("event_type", "auth_attempt"),
		slog.String("email", user.Email),
		slog.String("provider", "google"),
		slog.String("ip_address", c.ClientIP()),
	)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.ToUserResponse(user),
	})
}

// Logout godoc
// @Summary Logout current user
// @Description Invalidates all outstanding tokens and clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LogoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		writeServiceError(c, logger, err, "An error occurred during logout")
		return
	}

	clearSessionCookie(c, h.cfg)
	logger.Info("User logged out")

	c.JSON(http.StatusOK, dto.LogoutResponse{Message: "Logout successful"})
}

// ChangePassword godoc
// @Summary Change the session user's password
// @Description Verifies the current password, stores the new one and invalidates outstanding tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Current and new password are required"})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		writeServiceError(c, logger, err, "An error occurred while changing password")
		return
	}

	logger.Info("Password changed")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}
