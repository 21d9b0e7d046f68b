package sink

import (
	"context"
	"fmt"

	"task-calendar/internal/notification"
)

// Messenger is the part of the Telegram bot client the sink needs.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type telegramSink struct {
	bot    Messenger
	chatID int64
}

// NewTelegram returns a sink that posts alerts to one Telegram chat.
func NewTelegram(bot Messenger, chatID int64) (notification.Sink, error) {
	if bot == nil || chatID == 0 {
		return nil, notification.ErrTelegramConfig
	}
	return &telegramSink{bot: bot, chatID: chatID}, nil
}

func (s *telegramSink) Name() string { return "telegram" }

func (s *telegramSink) Send(ctx context.Context, a notification.Alert) error {
	if err := s.bot.SendMessage(ctx, s.chatID, formatAlert(a)); err != nil {
		return fmt.Errorf("telegram sink: %w", err)
	}
	return nil
}

func formatAlert(a notification.Alert) string {
	icon := "ℹ️"
	switch a.Level {
	case notification.LevelSuccess:
		icon = "✅"
	case notification.LevelWarning:
		icon = "⏰"
	}
	return fmt.Sprintf("%s %s\n%s", icon, a.Title, a.Body)
}
