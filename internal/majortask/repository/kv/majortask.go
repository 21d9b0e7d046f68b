package kv

import (
	"context"
	"errors"
	"fmt"

	"task-calendar/internal/majortask"
	"task-calendar/internal/majortask/repository"
	"task-calendar/internal/model"
	"task-calendar/pkg/kvstore"
)

const (
	TasksKey   = "major_tasks"
	CounterKey = "major_task_counter"
)

type implRepository struct {
	store kvstore.Store
}

func New(store kvstore.Store) repository.Repository {
	return &implRepository{store: store}
}

// Load reads both keys independently; a failing key falls back to its default.
func (r *implRepository) Load(ctx context.Context) (majortask.State, error) {
	s := majortask.State{Tasks: []model.MajorTask{}, Counter: 1}
	var errs []error

	var tasks []model.MajorTask
	if _, err := kvstore.GetJSON(ctx, r.store, TasksKey, &tasks); err != nil {
		errs = append(errs, fmt.Errorf("load %s: %w", TasksKey, err))
	} else if tasks != nil {
		s.Tasks = tasks
	}

	var counter int
	if ok, err := kvstore.GetJSON(ctx, r.store, CounterKey, &counter); err != nil {
		errs = append(errs, fmt.Errorf("load %s: %w", CounterKey, err))
	} else if ok && counter > 0 {
		s.Counter = counter
	}

	return s, errors.Join(errs...)
}

func (r *implRepository) Save(ctx context.Context, s majortask.State) error {
	return errors.Join(
		kvstore.SetJSON(ctx, r.store, TasksKey, s.Tasks),
		kvstore.SetJSON(ctx, r.store, CounterKey, s.Counter),
	)
}
