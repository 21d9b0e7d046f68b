package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/reminders/check", mw.RateLimit(), h.CheckUpcoming)
}
