package notification

import (
	"context"

	"task-calendar/internal/model"
)

// UseCase turns subtask events into alerts and fans them out to sinks.
// Delivery outcomes are logged and never reported back to the caller.
type UseCase interface {
	NotifyCreated(ctx context.Context, s model.Subtask)
	NotifyModified(ctx context.Context, s model.Subtask)
	NotifyReminder(ctx context.Context, input ReminderInput)
	// CheckUpcoming sends one reminder per subtask that starts within the
	// reminder window and forgets subtasks whose start has passed.
	CheckUpcoming(ctx context.Context, input CheckInput) (CheckOutput, error)
}

// Sink delivers an alert somewhere: a log, a chat, a desktop.
type Sink interface {
	Name() string
	Send(ctx context.Context, a Alert) error
}
