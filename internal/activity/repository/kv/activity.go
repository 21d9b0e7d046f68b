package kv

import (
	"context"
	"fmt"

	"task-calendar/internal/activity/repository"
	"task-calendar/internal/model"
	"task-calendar/pkg/kvstore"
)

// ActivityKey holds the JSON array of daily totals.
const ActivityKey = "daily_activity"

type implRepository struct {
	store kvstore.Store
}

func New(store kvstore.Store) repository.Repository {
	return &implRepository{store: store}
}

func (r *implRepository) Load(ctx context.Context) ([]model.DailyActivity, error) {
	var rows []model.DailyActivity
	if _, err := kvstore.GetJSON(ctx, r.store, ActivityKey, &rows); err != nil {
		return []model.DailyActivity{}, fmt.Errorf("load %s: %w", ActivityKey, err)
	}
	if rows == nil {
		rows = []model.DailyActivity{}
	}
	return rows, nil
}

func (r *implRepository) Save(ctx context.Context, rows []model.DailyActivity) error {
	if err := kvstore.SetJSON(ctx, r.store, ActivityKey, rows); err != nil {
		return fmt.Errorf("save %s: %w", ActivityKey, err)
	}
	return nil
}
