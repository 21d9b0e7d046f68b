package kv

import (
	"context"
	"fmt"

	"task-calendar/internal/notification/repository"
	"task-calendar/pkg/kvstore"
)

// SentKey holds the JSON array of reminded subtask ids.
const SentKey = "remindersSent"

type implRepository struct {
	store kvstore.Store
}

func New(store kvstore.Store) repository.ReminderRepository {
	return &implRepository{store: store}
}

func (r *implRepository) LoadSent(ctx context.Context) ([]string, error) {
	var ids []string
	if _, err := kvstore.GetJSON(ctx, r.store, SentKey, &ids); err != nil {
		return []string{}, fmt.Errorf("load %s: %w", SentKey, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (r *implRepository) SaveSent(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	if err := kvstore.SetJSON(ctx, r.store, SentKey, ids); err != nil {
		return fmt.Errorf("save %s: %w", SentKey, err)
	}
	return nil
}
