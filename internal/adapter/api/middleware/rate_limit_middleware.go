package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"casaok/internal/infrastructure/ratelimit"
	apperrors "casaok/pkg/errors"
	"casaok/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				uid = c.RealIP()
			}

			allowed, wait := m.limiter.Allow(uid, action)
			if !allowed {
				message := fmt.Sprintf("Too many requests, try again in %s", wait.Round(time.Second))
				return response.Error(c, apperrors.TooManyRequests(message))
			}

			return next(c)
		}
	}
}
