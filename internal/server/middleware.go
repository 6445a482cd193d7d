package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/margdarshak/disha/internal/logger"
)

// RequestLogger logs one line per request with method, path, status and latency.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
