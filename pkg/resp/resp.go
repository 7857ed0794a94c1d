package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"ok": code < http.StatusBadRequest, "message": msg})
}
func BadRequest(c *gin.Context, msg string) {
	Message(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	Message(c, http.StatusUnauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) {
	Message(c, http.StatusForbidden, msg)
}
func NotFound(c *gin.Context, msg string) {
	Message(c, http.StatusNotFound, msg)
}
func Conflict(c *gin.Context, msg string) {
	Message(c, http.StatusConflict, msg)
}

// ServerError logs err and hides it behind a generic message.
func ServerError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Message(c, http.StatusInternalServerError, "something went wrong")
}

// FieldError is one failed validation rule of a request body.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// ValidationError answers 400 with the validator's field errors, or the raw
// binding error when the body could not be decoded at all.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		BadRequest(c, err.Error())
		return
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "validation failed", "errors": out})
}
