package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"mintfire.backend/pkg/logger"
)

// LoggerMiddleware logs one line per request after the handler chain
// finishes
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP())
	}
}
