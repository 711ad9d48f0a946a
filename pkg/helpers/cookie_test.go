package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestCookieManagerSetToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	m := NewCookieManager("15m", false)
	m.SetToken(c, "tok123")

	ck := findCookie(t, w, TokenCookie)
	assert.Equal(t, "tok123", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.False(t, ck.Secure)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	// max-age agrees with the expiry parser, down to cookie resolution
	require.Equal(t, int(ParseExpiresInToMs("15m")/1000), ck.MaxAge)
}

func TestCookieManagerSecureInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	NewCookieManager("15m", true).SetToken(c, "tok123")
	assert.True(t, findCookie(t, w, TokenCookie).Secure)
}

func TestCookieManagerClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	m := NewCookieManager("15m", false)
	m.Clear(c)

	ck := findCookie(t, w, TokenCookie)
	assert.Empty(t, ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)
	assert.Less(t, ck.MaxAge, 0)
}
