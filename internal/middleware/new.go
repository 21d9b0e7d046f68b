package middleware

import (
	"task-calendar/pkg/log"
)

// Config tunes the request middlewares.
type Config struct {
	// RateLimitPerMin is the sustained request rate allowed per client IP.
	// Zero disables rate limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
