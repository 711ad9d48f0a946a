package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract uses flat JSON bodies. Error bodies in particular are
// fixed strings: the two login failure modes and the four token failure
// modes must be byte-identical, so everything funnels through Body.

// Body builds the standard `{"message": ...}` payload.
func Body(message string) gin.H {
	return gin.H{"message": message}
}

// Message writes a `{"message": ...}` body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Body(message))
}

// AbortWith ends the middleware chain with a `{"message": ...}` body.
func AbortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Body(message))
}

// NotFound is the JSON fallback for unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": "Not Found",
		"path":    c.Request.URL.Path,
	})
}
