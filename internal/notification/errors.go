package notification

import "errors"

var (
	ErrNoStartTime    = errors.New("subtask has no start time")
	ErrInvalidWindow  = errors.New("reminder window must be positive")
	ErrTelegramConfig = errors.New("telegram sink requires bot token and chat id")
)
