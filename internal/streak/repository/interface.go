package repository

import (
	"context"

	"task-calendar/internal/streak"
)

type Repository interface {
	Load(ctx context.Context) (streak.State, error)
	Save(ctx context.Context, s streak.State) error
}
