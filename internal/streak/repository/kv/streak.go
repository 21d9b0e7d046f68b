package kv

import (
	"context"
	"errors"
	"fmt"

	"task-calendar/internal/streak"
	"task-calendar/internal/streak/repository"
	"task-calendar/pkg/kvstore"
)

const (
	CounterKey    = "streakCounter"
	LastActiveKey = "lastActiveDate"
)

type implRepository struct {
	store kvstore.Store
}

func New(store kvstore.Store) repository.Repository {
	return &implRepository{store: store}
}

func (r *implRepository) Load(ctx context.Context) (streak.State, error) {
	var s streak.State
	var errs []error
	if _, err := kvstore.GetJSON(ctx, r.store, CounterKey, &s.Count); err != nil {
		s.Count = 0
		errs = append(errs, fmt.Errorf("load %s: %w", CounterKey, err))
	}
	if _, err := kvstore.GetJSON(ctx, r.store, LastActiveKey, &s.LastActiveDate); err != nil {
		s.LastActiveDate = ""
		errs = append(errs, fmt.Errorf("load %s: %w", LastActiveKey, err))
	}
	return s, errors.Join(errs...)
}

func (r *implRepository) Save(ctx context.Context, s streak.State) error {
	return errors.Join(
		kvstore.SetJSON(ctx, r.store, CounterKey, s.Count),
		kvstore.SetJSON(ctx, r.store, LastActiveKey, s.LastActiveDate),
	)
}
