package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-calendar/config"
	_ "task-calendar/docs" // Swagger docs
	activityHTTP "task-calendar/internal/activity/delivery/http"
	"task-calendar/internal/app"
	"task-calendar/internal/httpserver"
	majorHTTP "task-calendar/internal/majortask/delivery/http"
	"task-calendar/internal/middleware"
	notificationHTTP "task-calendar/internal/notification/delivery/http"
	streakHTTP "task-calendar/internal/streak/delivery/http"
	subtaskHTTP "task-calendar/internal/subtask/delivery/http"
	"task-calendar/pkg/log"
)

// @title       Task Calendar API
// @description Personal calendar with recurring subtasks, reminders, daily activity, major tasks and streaks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		File: log.FileConfig{
			Filename:   cfg.Logger.File.Filename,
			MaxSize:    cfg.Logger.File.MaxSize,
			MaxBackups: cfg.Logger.File.MaxBackups,
			MaxAge:     cfg.Logger.File.MaxAge,
			Compress:   cfg.Logger.File.Compress,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Domains
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnf(ctx, "Closing store: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin}),
		SubtaskHandler:   subtaskHTTP.New(logger, a.Subtasks),
		ActivityHandler:  activityHTTP.New(logger, a.Activity, a.Subtasks),
		MajorTaskHandler: majorHTTP.New(logger, a.MajorTasks),
		StreakHandler:    streakHTTP.New(logger, a.Streak, nil),
		ReminderHandler:  notificationHTTP.New(logger, a.Notifier, a.Subtasks, nil),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
