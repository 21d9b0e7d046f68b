package app

import (
	"context"
	"fmt"
	"time"

	"task-calendar/config"
	"task-calendar/internal/activity"
	activityKV "task-calendar/internal/activity/repository/kv"
	activityUC "task-calendar/internal/activity/usecase"
	"task-calendar/internal/majortask"
	majorKV "task-calendar/internal/majortask/repository/kv"
	majorUC "task-calendar/internal/majortask/usecase"
	"task-calendar/internal/notification"
	notificationKV "task-calendar/internal/notification/repository/kv"
	"task-calendar/internal/notification/sink"
	notificationUC "task-calendar/internal/notification/usecase"
	"task-calendar/internal/streak"
	streakKV "task-calendar/internal/streak/repository/kv"
	streakUC "task-calendar/internal/streak/usecase"
	"task-calendar/internal/subtask"
	subtaskKV "task-calendar/internal/subtask/repository/kv"
	subtaskUC "task-calendar/internal/subtask/usecase"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/kvstore"
	"task-calendar/pkg/log"
	"task-calendar/pkg/telegram"
)

// App is the set of use cases sharing one key-value store.
type App struct {
	Store    kvstore.Store
	Parser   *datemath.Parser
	Notifier notification.UseCase

	Subtasks   subtask.UseCase
	Activity   activity.UseCase
	MajorTasks majortask.UseCase
	Streak     streak.UseCase
}

// Build opens the configured store and wires every use case onto it.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	parser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		parser, _ = datemath.NewParser("UTC")
	}

	store, err := kvstore.Open(kvstore.Config{
		Driver:    cfg.Storage.Driver,
		Path:      cfg.Storage.Path,
		CacheSize: cfg.Storage.CacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	l.Infof(ctx, "Storage: %s %s", cfg.Storage.Driver, cfg.Storage.Path)

	sinks := []notification.Sink{sink.NewLog(l)}
	if tg := cfg.Notification.Telegram; tg.BotToken != "" {
		tgSink, err := sink.NewTelegram(telegram.NewBot(tg.BotToken), tg.ChatID)
		if err != nil {
			l.Warnf(ctx, "Telegram notifications disabled: %v", err)
		} else {
			sinks = append(sinks, tgSink)
			l.Info(ctx, "Telegram notifications enabled")
		}
	}

	notifier, err := notificationUC.New(l, notificationKV.New(store), parser, notificationUC.Config{
		ReminderWindow: cfg.Notification.ReminderWindow,
		DedupeTTL:      cfg.Notification.DedupeTTL,
	}, sinks...)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		Store:      store,
		Parser:     parser,
		Notifier:   notifier,
		Subtasks:   subtaskUC.New(l, subtaskKV.New(store, l), notifier),
		Activity:   activityUC.New(l, activityKV.New(store)),
		MajorTasks: majorUC.New(l, majorKV.New(store), time.Now),
		Streak:     streakUC.New(l, streakKV.New(store), parser),
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
