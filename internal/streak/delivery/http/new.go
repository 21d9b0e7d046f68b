package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/streak"
	"task-calendar/pkg/log"
)

type Handler interface {
	Get(c *gin.Context)
	Record(c *gin.Context)
	Reset(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  streak.UseCase
	now func() time.Time
}

// New creates the streak handler; now is time.Now when nil.
func New(l log.Logger, uc streak.UseCase, now func() time.Time) Handler {
	if now == nil {
		now = time.Now
	}
	return &handler{l: l, uc: uc, now: now}
}
