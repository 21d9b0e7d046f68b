package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/subtask"
	"task-calendar/pkg/log"
)

// Handler is the HTTP delivery of the subtask store.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc subtask.UseCase
}

// New creates a new HTTP handler for subtasks.
func New(l log.Logger, uc subtask.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
