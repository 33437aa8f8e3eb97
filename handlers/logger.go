package handlers

import (
	"wayfare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger returns the global logger tagged with the request's
// correlation id when the middleware has set one.
func requestLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger()
	if id, ok := c.Get("requestID"); ok {
		if s, ok := id.(string); ok && s != "" {
			return logger.With(zap.String("requestID", s))
		}
	}
	return logger
}
