package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatapana/khata_backend/internal/apperrors"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/platform/config"
	"github.com/khatapana/khata_backend/internal/utils"
)

// AuthMiddleware is the request gate. Each protected request walks a small
// state machine: a verifying access cookie passes straight through with no
// store lookup; otherwise the refresh cookie is checked against the stored
// copy and, on a match, a renewed access cookie is issued within the same
// request. Every rejection is a 401 that distinguishes only
// missing/expired/revoked for the client.
func AuthMiddleware(cfg *config.Config, authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		// Access path: purely cryptographic, the deliberate fast path.
		if accessToken, err := c.Cookie(cfg.AccessTokenCookieName); err == nil && accessToken != "" {
			claims, parseErr := utils.ParseAccessToken(accessToken, cfg.AccessTokenSecret)
			if parseErr == nil {
				proceedAs(c, logger, claims.Subject, claims.Username)
				return
			}
			// Expired or malformed access credential is recovered locally by
			// falling through to the refresh path, never surfaced.
			logger.Debug("Access token rejected, trying refresh path", slog.String("reason", parseErr.Error()))
		}

		refreshToken, err := c.Cookie(cfg.RefreshTokenCookieName)
		if err != nil || refreshToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Login required"})
			return
		}

		user, err := authSvc.ValidateRefreshToken(c.Request.Context(), refreshToken)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrSessionExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired - Login again"})
			case errors.Is(err, apperrors.ErrSessionRevoked):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			default:
				logger.Error("Refresh validation failed", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
			}
			return
		}

		newAccessToken, err := authSvc.IssueAccessToken(c.Request.Context(), user)
		if err != nil {
			logger.Error("Failed to issue renewed access token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
			return
		}
		SetAccessTokenCookie(c, cfg, newAccessToken)

		proceedAs(c, logger, user.UserID, user.Username)
	}
}

// proceedAs attaches the resolved identity and an enriched logger to the
// request context and hands off to the downstream handler.
func proceedAs(c *gin.Context, logger *slog.Logger, userID, username string) {
	ctx := WithIdentity(c.Request.Context(), userID, username)

	enrichedLogger := logger.With(slog.String("user_id", userID))
	ctx = WithLogger(ctx, enrichedLogger)

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
