package repository

import (
	"context"

	"task-calendar/internal/subtask"
)

// Repository is the persistence port of the subtask store.
type Repository interface {
	// Load returns the best state it could read. A non-nil error reports the
	// parts that failed; the returned state is still usable.
	Load(ctx context.Context) (subtask.State, error)
	Save(ctx context.Context, s subtask.State) error
}
