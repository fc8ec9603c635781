package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"apt-be-svc/pkg/apperror"
	"apt-be-svc/pkg/utils"
)

// ErrorHandler turns panics into a JSON 500 response
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.InternalServerErrorResponse(c, "Internal server error", fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}

// NoRouteHandler answers unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "Route not found", string(apperror.KindNotFound), nil)
	}
}

// NoMethodHandler answers known paths called with the wrong method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED", nil)
	}
}
