package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/infrastructure/ratelimit"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/logger"
	"github.com/Menatic/IT-Support/internal/shared/utils"
)

type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit throttles per authenticated user, falling back to the client IP for
// anonymous requests. When the limiter backend is unreachable the request is
// allowed through.
func (m *RateLimitMiddleware) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:ip:%s", scope, c.ClientIP())
		if actor, ok := authorization.ActorFromContext(c); ok {
			key = fmt.Sprintf("%s:user:%d", scope, actor.UserID)
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
