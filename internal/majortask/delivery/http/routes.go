package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/major-tasks", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
