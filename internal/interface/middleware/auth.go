package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/empdesk/employee-api/pkg/helpers"
	"github.com/empdesk/employee-api/pkg/response"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxClaimsKey = "claims"
	CtxUserIDKey = "userID"
)

// RequireAuth gates protected routes. It takes the token from the
// Authorization header first, then the session cookie. Every verification
// failure (bad signature, expired, malformed) is rejected with the same
// body; the cause is never distinguished to the caller.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			if v, err := c.Cookie(helpers.TokenCookie); err == nil {
				token = v
			}
		}
		if token == "" {
			response.AbortWith(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !jwt.Configured() {
			response.AbortWith(c, http.StatusInternalServerError, "Server misconfiguration: JWT_SECRET missing")
			return
		}

		claims, err := jwt.Verify(token)
		if err != nil {
			response.AbortWith(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(CtxClaimsKey, claims)
		c.Set(CtxUserIDKey, claims.Subject)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}
