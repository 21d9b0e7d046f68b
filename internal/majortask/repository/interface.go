package repository

import (
	"context"

	"task-calendar/internal/majortask"
)

type Repository interface {
	Load(ctx context.Context) (majortask.State, error)
	Save(ctx context.Context, s majortask.State) error
}
