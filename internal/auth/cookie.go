package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SetSessionCookie attaches the token to the response. The cookie is
// HTTP-only and same-site strict; Secure is set in production so the
// cookie never travels over plain HTTP there.
func SetSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

// ClearSessionCookie overwrites the session cookie with an empty,
// already-expired value so the client drops it on the next request.
func ClearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

// SessionToken extracts the token from the request cookie. An empty
// result means no token; that is not an error.
func SessionToken(c *fiber.Ctx) string {
	return c.Cookies(SessionCookieName)
}
