package web

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request, at a level chosen by status.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}

		ctx := c.Request.Context()
		msg := "Request completed"
		switch {
		case status >= 500:
			logger.ErrorContext(ctx, msg, attrs...)
		case status >= 400:
			logger.WarnContext(ctx, msg, attrs...)
		default:
			logger.InfoContext(ctx, msg, attrs...)
		}
	}
}
