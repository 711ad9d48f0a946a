package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP builds an AllowFunc that exempts loopback and RFC 1918
// addresses from rate limiting. Used for the debug endpoints so local
// scraping never trips the limiter.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		ip := net.ParseIP(ipFromCtx(c))
		if ip == nil {
			return false
		}
		return ip.IsLoopback() || ip.IsPrivate()
	}
}
