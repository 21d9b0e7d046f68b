package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
)

// RegisterRoutes maps /subtasks under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	subtasks := rg.Group("/subtasks", mw.RateLimit())
	{
		subtasks.POST("", h.Create)
		subtasks.GET("", h.List)
		subtasks.GET("/:id", h.Detail)
		subtasks.PATCH("/:id", h.Update)
		subtasks.DELETE("/:id", h.Delete)
	}
}
