package sink_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"task-calendar/internal/notification"
	"task-calendar/internal/notification/sink"
	pkgLog "task-calendar/pkg/log"
)

type mockMessenger struct {
	chatID int64
	text   string
	err    error
}

func (m *mockMessenger) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.chatID, m.text = chatID, text
	return m.err
}

func TestTelegramSink(t *testing.T) {
	m := &mockMessenger{}
	s, err := sink.NewTelegram(m, 99)
	if err != nil {
		t.Fatalf("NewTelegram: %v", err)
	}
	if s.Name() != "telegram" {
		t.Errorf("Name = %q", s.Name())
	}

	a := notification.Alert{Title: "Event Reminder", Body: "Gym starts in 10 minutes", Level: notification.LevelWarning}
	if err := s.Send(context.Background(), a); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if m.chatID != 99 || !strings.Contains(m.text, "Gym starts in 10 minutes") || !strings.Contains(m.text, "Event Reminder") {
		t.Errorf("sent chat=%d text=%q", m.chatID, m.text)
	}

	m.err = errors.New("network down")
	if err := s.Send(context.Background(), a); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestTelegramSinkRequiresConfig(t *testing.T) {
	if _, err := sink.NewTelegram(&mockMessenger{}, 0); !errors.Is(err, notification.ErrTelegramConfig) {
		t.Errorf("err = %v, want ErrTelegramConfig", err)
	}
	if _, err := sink.NewTelegram(nil, 1); !errors.Is(err, notification.ErrTelegramConfig) {
		t.Errorf("err = %v, want ErrTelegramConfig", err)
	}
}

func TestLogSink(t *testing.T) {
	s := sink.NewLog(pkgLog.NewNop())
	if s.Name() != "log" {
		t.Errorf("Name = %q", s.Name())
	}
	if err := s.Send(context.Background(), notification.Alert{Title: "x"}); err != nil {
		t.Errorf("Send: %v", err)
	}
}
