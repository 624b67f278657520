package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
)

// RequestLogger logs one structured line per request.
// 5xx responses are logged at ERROR and 4xx at WARN.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs, "error", last.Err)
		}

		slog.Log(c.Request.Context(), level, "HTTP request", attrs...)
	}
}

// Recovery converts panics into the generic 500 error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "Panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, dto.MessageUnexpected))
	})
}
