package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/majortask"
	"task-calendar/pkg/log"
)

type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc majortask.UseCase
}

func New(l log.Logger, uc majortask.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
