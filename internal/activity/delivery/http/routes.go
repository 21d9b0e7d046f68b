package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	act := rg.Group("/activity", mw.RateLimit())
	{
		act.POST("", h.AddTime)
		act.GET("", h.List)
		act.POST("/rebuild", h.Rebuild)
		act.GET("/:date", h.Total)
	}
}
