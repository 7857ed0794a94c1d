package middlewares

import (
	"strings"

	"fooddelivery/pkg/resp"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware reads the signature from the token query parameter, which
// browsers can set on a websocket handshake, and falls back to the header.
func WSAuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			c.Abort()
			return
		}
		authorize(c, tokenStr, secret, requiredRoles)
	}
}
