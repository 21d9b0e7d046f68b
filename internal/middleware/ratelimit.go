package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-calendar/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()
	return limiter.Allow()
}

// RateLimit rejects clients that exceed the configured rate with 429.
// It is a pass-through when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
