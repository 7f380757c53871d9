package cookie

import (
	"net/http"
	"time"

	"voucher-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "vl_access_token"
	RefreshTokenCookieName = "vl_refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	set(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", -1)
	set(c, cfg, RefreshTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func sameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
