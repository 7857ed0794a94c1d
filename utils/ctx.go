package utils

import "github.com/gin-gonic/gin"

const principalKey = "principal"

// SetPrincipal stores the authenticated caller on the gin context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// CurrentPrincipal returns the caller set by the auth middleware.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok && p.ID != ""
}
