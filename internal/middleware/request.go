package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-calendar/pkg/log"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a new one, echoes it
// back, and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Logging writes one line per request once it has been served.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
