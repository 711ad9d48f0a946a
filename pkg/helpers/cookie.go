package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the name of the session cookie.
const TokenCookie = "token"

// CookieManager sets and clears the session cookie. The max-age is derived
// from the same expiry string the token issuer signs with, via the expiry
// parser, so the cookie and the token always agree on lifetime.
type CookieManager struct {
	MaxAge int // seconds
	Secure bool
}

func NewCookieManager(expiresIn string, secure bool) *CookieManager {
	return &CookieManager{
		MaxAge: int(ParseExpiresInToMs(expiresIn) / 1000),
		Secure: secure,
	}
}

// SetToken stores the session token as an HttpOnly, SameSite=Strict cookie
// on path /. Secure is on in production.
func (m *CookieManager) SetToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookie, token, m.MaxAge, "/", "", m.Secure, true)
}

// Clear removes the session cookie using the same attributes it was set
// with. Idempotent when no cookie is present.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookie, "", -1, "/", "", m.Secure, true)
}
