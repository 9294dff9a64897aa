package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastbite/lastbite-backend/internal/config"
)

func rateLimitRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(cfg))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitEnforcesBurst(t *testing.T) {
	cfg := &config.Config{
		Security: config.SecurityConfig{
			RateLimitPerMinute: 60,
			RateLimitBurst:     3,
		},
	}
	r := rateLimitRouter(cfg)

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do(), "request %d within burst", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestRateLimitIsPerClientIP(t *testing.T) {
	cfg := &config.Config{
		Security: config.SecurityConfig{
			RateLimitPerMinute: 60,
			RateLimitBurst:     1,
		},
	}
	r := rateLimitRouter(cfg)

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1234"))

	// A different client still has its own bucket
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234"))
}

func TestRateLimitOwnsNoBackgroundGoroutine(t *testing.T) {
	cfg := &config.Config{
		Security: config.SecurityConfig{
			RateLimitPerMinute: 60,
			RateLimitBurst:     1,
		},
	}

	before := runtime.NumGoroutine()
	for i := 0; i < 100; i++ {
		_ = RateLimit(cfg)
	}
	after := runtime.NumGoroutine()

	// Constructing middleware must not spawn anything long-lived
	assert.LessOrEqual(t, after, before+2)
}
