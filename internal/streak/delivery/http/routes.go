package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	s := rg.Group("/streak", mw.RateLimit())
	{
		s.GET("", h.Get)
		s.POST("/record", h.Record)
		s.POST("/reset", h.Reset)
	}
}
