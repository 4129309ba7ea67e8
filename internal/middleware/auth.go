package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tajuwa/clickbit_backend/internal/apperrors"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/platform/config"
	"github.com/tajuwa/clickbit_backend/internal/utils"
)

// SessionAuthMiddleware resolves the session cookie to a validated user.
// One decode attempt, no refresh fallback: missing cookie is a 400, every
// other failure is a 401 with expiry getting its own message. On success the
// user ID, the loaded user and an enriched logger are stored in the request
// context.
func SessionAuthMiddleware(cfg *config.Config, tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		cookie, err := c.Cookie(cfg.SessionCookieName)
		if err != nil || cookie == "" {
			logger.Warn("Session cookie missing from request")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Token not received"})
			return
		}

		claims, err := tokenSvc.VerifyToken(c.Request.Context(), cookie, utils.TokenTypeAccess)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				logger.Warn("Token validation failed", slog.String("reason", "expired"))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
				return
			}
			logger.Warn("Token validation failed", slog.String("reason", "invalid"))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		if !claims.HasRequiredClaims() {
			logger.Warn("Token validation failed", slog.String("reason", "missing required claims"))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			logger.Warn("Token validation failed", slog.String("reason", "malformed subject"))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID.String())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token validation failed", slog.String("reason", "user not found"), slog.String("user_id", userID.String()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
				return
			}
			logger.Error("Failed to load user during session resolution", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while validating the session"})
			return
		}

		// Tokens minted before the last logout or password change carry a
		// stale token_version and fail closed here.
		if claims.TokenVersion != user.TokenVersion {
			logger.Warn("Token validation failed", slog.String("reason", "stale token version"), slog.String("user_id", user.UserID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		logger.Info("Token validation succeeded", slog.String("user_id", user.UserID))

		ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		ctx = context.WithValue(ctx, currentUserKey, user)
		ctx = context.WithValue(ctx, loggerCtxKey, logger.With(slog.String("user_id", user.UserID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
