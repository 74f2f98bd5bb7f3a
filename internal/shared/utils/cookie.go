package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/shared/config"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetAuthCookies sets access and refresh token as HttpOnly cookies
func SetAuthCookies(c *gin.Context, cookieConfig config.CookieConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	sameSite := parseSameSite(cookieConfig.SameSite)
	c.SetSameSite(sameSite)

	c.SetCookie(
		AccessTokenCookie,
		accessToken,
		accessMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)

	c.SetCookie(
		RefreshTokenCookie,
		refreshToken,
		refreshMaxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearAuthCookies clears access and refresh token cookies
func ClearAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	sameSite := parseSameSite(cookieConfig.SameSite)
	c.SetSameSite(sameSite)

	c.SetCookie(
		AccessTokenCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)

	c.SetCookie(
		RefreshTokenCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetTokenFromCookie retrieves a token from the named cookie. The auth
// middleware falls back to the Authorization header when this is empty.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err == nil && token != "" {
		return token
	}
	return ""
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
