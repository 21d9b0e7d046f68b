package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/notification"
	"task-calendar/internal/subtask"
	"task-calendar/pkg/log"
)

type Handler interface {
	CheckUpcoming(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       notification.UseCase
	subtasks subtask.UseCase
	now      func() time.Time
}

// New creates the reminder handler; now is time.Now when nil.
func New(l log.Logger, uc notification.UseCase, subtasks subtask.UseCase, now func() time.Time) Handler {
	if now == nil {
		now = time.Now
	}
	return &handler{l: l, uc: uc, subtasks: subtasks, now: now}
}
