package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	activityHTTP "task-calendar/internal/activity/delivery/http"
	majorHTTP "task-calendar/internal/majortask/delivery/http"
	"task-calendar/internal/model"
	notificationHTTP "task-calendar/internal/notification/delivery/http"
	streakHTTP "task-calendar/internal/streak/delivery/http"
	subtaskHTTP "task-calendar/internal/subtask/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID(), srv.mw.Logging())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	subtaskHTTP.RegisterRoutes(api, srv.subtaskHandler, srv.mw)
	srv.l.Infof(ctx, "Subtask routes registered at /api/v1/subtasks")

	if srv.activityHandler != nil {
		activityHTTP.RegisterRoutes(api, srv.activityHandler, srv.mw)
		srv.l.Infof(ctx, "Activity routes registered at /api/v1/activity")
	}
	if srv.majorTaskHandler != nil {
		majorHTTP.RegisterRoutes(api, srv.majorTaskHandler, srv.mw)
		srv.l.Infof(ctx, "Major task routes registered at /api/v1/major-tasks")
	}
	if srv.streakHandler != nil {
		streakHTTP.RegisterRoutes(api, srv.streakHandler, srv.mw)
		srv.l.Infof(ctx, "Streak routes registered at /api/v1/streak")
	}
	if srv.reminderHandler != nil {
		notificationHTTP.RegisterRoutes(api, srv.reminderHandler, srv.mw)
		srv.l.Infof(ctx, "Reminder route registered at POST /api/v1/reminders/check")
	} else {
		srv.l.Infof(ctx, "Reminder handler not configured, skipping reminder route")
	}

	return nil
}
