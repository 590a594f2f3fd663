package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Cookie names shared by the login, refresh and logout flows. The auth
// middleware reads AccessTokenCookie before falling back to the
// Authorization header.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// SetAuthCookies attaches both credentials as httpOnly, secure cookies.
func SetAuthCookies(c echo.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	c.SetCookie(authCookie(AccessTokenCookie, accessToken, accessTTL))
	c.SetCookie(authCookie(RefreshTokenCookie, refreshToken, refreshTTL))
}

// ClearAuthCookies expires both credential cookies.
func ClearAuthCookies(c echo.Context) {
	c.SetCookie(expiredCookie(AccessTokenCookie))
	c.SetCookie(expiredCookie(RefreshTokenCookie))
}

func authCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
