package repository

import (
	"context"

	"task-calendar/internal/model"
)

type Repository interface {
	Load(ctx context.Context) ([]model.DailyActivity, error)
	Save(ctx context.Context, rows []model.DailyActivity) error
}
