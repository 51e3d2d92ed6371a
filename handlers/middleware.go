package handlers

import (
	"time"

	"review-sentiment/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one structured line per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		reqLog := log.WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			reqLog = reqLog.WithError(c.Errors.Last())
		}

		switch {
		case status >= 500:
			reqLog.Error("request failed", nil)
		case status >= 400:
			reqLog.Warn("request rejected", nil)
		default:
			reqLog.Info("request served", nil)
		}
	}
}
