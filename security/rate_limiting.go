package security

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: redisClient, limit: limit, window: window}
}

// LimitToggles caps participation toggles per user (per IP when anonymous)
// with a fixed Redis window. Redis being down never blocks the request.
func (r *RateLimiter) LimitToggles() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var identifier string
		if e.Auth != nil {
			identifier = fmt.Sprintf("user:%s", e.Auth.Id)
		} else {
			identifier = e.RealIP()
		}
		key := fmt.Sprintf("ratelimit:toggle:%s", identifier)

		count, err := r.redis.Incr(e.Request.Context(), key).Result()
		if err == nil {
			if count == 1 {
				r.redis.Expire(e.Request.Context(), key, r.window)
			}
			if count > int64(r.limit) {
				return e.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "Rate limit exceeded. Please try again later.",
				})
			}
		}

		return e.Next()
	}
}

// AntiBot rejects obvious crawler user agents before they reach the feed.
func (r *RateLimiter) AntiBot() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		userAgent := e.Request.Header.Get("User-Agent")
		if isSuspiciousUserAgent(userAgent) {
			return e.JSON(http.StatusForbidden, map[string]string{
				"error": "Access denied",
			})
		}
		return e.Next()
	}
}

func isSuspiciousUserAgent(ua string) bool {
	suspicious := []string{"bot", "crawler", "spider", "scraper"}
	for _, pattern := range suspicious {
		if strings.Contains(strings.ToLower(ua), pattern) {
			return true
		}
	}
	return false
}
