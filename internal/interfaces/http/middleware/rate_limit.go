// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lastbite/lastbite-backend/internal/config"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL         = 10 * time.Minute
	limiterCleanupInterval = time.Minute
)

// ipLimiter tracks one token bucket per client IP
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit limits requests per client IP using a token bucket. Idle entries
// are evicted lazily from the request path, at most once per cleanup
// interval, so the middleware owns no background goroutine.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	var (
		mu          sync.Mutex
		limiters    = make(map[string]*ipLimiter)
		lastCleanup = time.Now()
	)

	perSecond := rate.Limit(float64(cfg.Security.RateLimitPerMinute) / 60.0)
	burst := cfg.Security.RateLimitBurst

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if now.Sub(lastCleanup) > limiterCleanupInterval {
			for key, entry := range limiters {
				if now.Sub(entry.lastSeen) > limiterIdleTTL {
					delete(limiters, key)
				}
			}
			lastCleanup = now
		}

		entry, ok := limiters[ip]
		if !ok {
			entry = &ipLimiter{limiter: rate.NewLimiter(perSecond, burst)}
			limiters[ip] = entry
		}
		entry.lastSeen = now
		mu.Unlock()

		if !entry.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
