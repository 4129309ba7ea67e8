package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tajuwa/clickbit_backend/internal/platform/config"
)

// Session cookie attributes are built in exactly one place so issuance and
// clearing can never drift apart. SameSite=None because the frontend lives
// on a different subdomain.

func setSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cfg.SessionCookieName, token, int(cfg.AccessTokenTTL().Seconds()), "/", cfg.SessionCookieDomain, true, true)
}

func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(cfg.SessionCookieName, "", -1, "/", cfg.SessionCookieDomain, true, true)
}
