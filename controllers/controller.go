package controllers

import (
	"errors"

	"fooddelivery/pkg/resp"
	"fooddelivery/repository"
	"fooddelivery/services"
	"fooddelivery/utils"

	"github.com/gin-gonic/gin"
)

// principal returns the authenticated caller or answers 401.
func principal(c *gin.Context) (utils.Principal, bool) {
	p, ok := utils.CurrentPrincipal(c)
	if !ok {
		resp.Unauthorized(c, "Not authorized")
	}
	return p, ok
}

// fail answers the errors every controller shares and hides the rest behind 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, repository.ErrNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
