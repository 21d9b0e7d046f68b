package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	activityHTTP "task-calendar/internal/activity/delivery/http"
	majorHTTP "task-calendar/internal/majortask/delivery/http"
	"task-calendar/internal/middleware"
	notificationHTTP "task-calendar/internal/notification/delivery/http"
	streakHTTP "task-calendar/internal/streak/delivery/http"
	subtaskHTTP "task-calendar/internal/subtask/delivery/http"
	"task-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	subtaskHandler   subtaskHTTP.Handler
	activityHandler  activityHTTP.Handler
	majorTaskHandler majorHTTP.Handler
	streakHandler    streakHTTP.Handler
	reminderHandler  notificationHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	SubtaskHandler   subtaskHTTP.Handler
	ActivityHandler  activityHTTP.Handler
	MajorTaskHandler majorHTTP.Handler
	StreakHandler    streakHTTP.Handler
	ReminderHandler  notificationHTTP.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		subtaskHandler:   cfg.SubtaskHandler,
		activityHandler:  cfg.ActivityHandler,
		majorTaskHandler: cfg.MajorTaskHandler,
		streakHandler:    cfg.StreakHandler,
		reminderHandler:  cfg.ReminderHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.subtaskHandler == nil {
		return errors.New("subtask handler is required")
	}
	return nil
}
