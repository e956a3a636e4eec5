package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatapana/khata_backend/internal/platform/config"
)

// cookieSameSite returns the SameSite policy for session cookies. Production
// serves the frontend cross-site over HTTPS, so it needs Secure + None;
// local development uses Lax over plain HTTP.
func cookieSameSite(cfg *config.Config) http.SameSite {
	if cfg.IsProduction {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// SetAccessTokenCookie attaches a fresh access credential to the response.
func SetAccessTokenCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(cookieSameSite(cfg))
	c.SetCookie(cfg.AccessTokenCookieName, token, int(cfg.AccessTokenExpiry.Seconds()), "/", "", cfg.IsProduction, true)
}

// SetRefreshTokenCookie attaches a fresh refresh credential to the response.
func SetRefreshTokenCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(cookieSameSite(cfg))
	c.SetCookie(cfg.RefreshTokenCookieName, token, int(cfg.RefreshTokenExpiry.Seconds()), "/", "", cfg.IsProduction, true)
}

// ClearSessionCookies instructs the client to discard both credentials.
func ClearSessionCookies(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(cookieSameSite(cfg))
	c.SetCookie(cfg.AccessTokenCookieName, "", -1, "/", "", cfg.IsProduction, true)
	c.SetCookie(cfg.RefreshTokenCookieName, "", -1, "/", "", cfg.IsProduction, true)
}
