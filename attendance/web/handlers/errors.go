package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/web/common"
)

// WriteError maps domain errors to 4xx responses with their message.
// Anything else is logged and reported as a generic 500.
func WriteError(c *gin.Context, err error) {
	switch {
	case core.IsDomainError(err):
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrDuplicateUser):
		c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse(err.Error()))
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("internal server error"))
	}
}

// BindError reports a request binding failure as 400.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
}
