// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-control/backend/internal/application/adapter"
	domainerror "github.com/budget-control/backend/internal/domain/error"
	"github.com/budget-control/backend/internal/integration/entrypoint/dto"
)

// RateLimiter provides client IP based rate limiting on top of a RateLimitStore.
type RateLimiter struct {
	store adapter.RateLimitStore
}

// NewRateLimiter creates a new rate limiter backed by store.
func NewRateLimiter(store adapter.RateLimitStore) *RateLimiter {
	return &RateLimiter{
		store: store,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Requests are let through when the store is unavailable.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.Allow(c.Request.Context(), clientIP)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "Rate limit store unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			limited := domainerror.NewAuthError(domainerror.ErrCodeRateLimited, dto.MessageTooManyRequests, domainerror.ErrRateLimited)
			_ = c.Error(limited)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse(http.StatusTooManyRequests, limited.Message))
			return
		}

		c.Next()
	}
}
