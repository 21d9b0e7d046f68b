package sink

import (
	"context"

	"task-calendar/internal/notification"
	pkgLog "task-calendar/pkg/log"
)

type logSink struct {
	l pkgLog.Logger
}

// NewLog returns a sink that writes alerts to the application log.
func NewLog(l pkgLog.Logger) notification.Sink {
	return &logSink{l: l}
}

func (s *logSink) Name() string { return "log" }

func (s *logSink) Send(ctx context.Context, a notification.Alert) error {
	if a.Level == notification.LevelWarning {
		s.l.Warnf(ctx, "notification [%s] %s: %s", a.Tag, a.Title, a.Body)
		return nil
	}
	s.l.Infof(ctx, "notification [%s] %s: %s", a.Tag, a.Title, a.Body)
	return nil
}
