package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/activity"
	"task-calendar/internal/subtask"
	"task-calendar/pkg/log"
)

type Handler interface {
	AddTime(c *gin.Context)
	List(c *gin.Context)
	Total(c *gin.Context)
	Rebuild(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       activity.UseCase
	subtasks subtask.UseCase
}

// New creates the activity handler. subtasks feeds the rebuild endpoint.
func New(l log.Logger, uc activity.UseCase, subtasks subtask.UseCase) Handler {
	return &handler{l: l, uc: uc, subtasks: subtasks}
}
