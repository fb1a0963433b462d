package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/web/common"
)

// RequireRole must run after Authentication.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("not authorized"))
			return
		}
		for _, r := range roles {
			if identity.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("not authorized for this action"))
	}
}
