package middlewares

import (
	"slices"
	"strings"

	"fooddelivery/pkg/resp"
	"fooddelivery/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer signature and, when roles are given,
// requires the caller to hold one of them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "Not authorized")
			c.Abort()
			return
		}
		authorize(c, strings.TrimPrefix(h, "Bearer "), secret, requiredRoles)
	}
}

func authorize(c *gin.Context, tokenStr, secret string, requiredRoles []string) {
	p, err := utils.ValidateSignature(tokenStr, secret)
	if err != nil {
		resp.Unauthorized(c, "Not authorized")
		c.Abort()
		return
	}
	if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, p.Role) {
		resp.Forbidden(c, "forbidden")
		c.Abort()
		return
	}

	utils.SetPrincipal(c, p)
	c.Next()
}
