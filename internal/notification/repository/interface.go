package repository

import "context"

// ReminderRepository persists the ids of subtasks that were already reminded.
type ReminderRepository interface {
	LoadSent(ctx context.Context) ([]string, error)
	SaveSent(ctx context.Context, ids []string) error
}
