package kv

import (
	"context"
	"errors"
	"fmt"

	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
	"task-calendar/internal/subtask/repository"
	"task-calendar/pkg/kvstore"
	pkgLog "task-calendar/pkg/log"
)

const (
	SubtasksKey = "calendar_subtasks"
	CounterKey  = "subtask_counter"
)

type implRepository struct {
	store kvstore.Store
	l     pkgLog.Logger
}

// New creates a Repository persisting the subtask collection and counter as
// two JSON values in store.
func New(store kvstore.Store, l pkgLog.Logger) repository.Repository {
	return &implRepository{store: store, l: l}
}

func (r *implRepository) Load(ctx context.Context) (subtask.State, error) {
	s := subtask.NewState()
	var errs []error

	var tasks []model.Subtask
	if found, err := kvstore.GetJSON(ctx, r.store, SubtasksKey, &tasks); err != nil {
		r.l.Warnf(ctx, "kv.Load: failed to load %s: %v", SubtasksKey, err)
		errs = append(errs, fmt.Errorf("load subtasks: %w", err))
	} else if found && tasks != nil {
		s.Subtasks = tasks
	}

	var counter int
	if found, err := kvstore.GetJSON(ctx, r.store, CounterKey, &counter); err != nil {
		r.l.Warnf(ctx, "kv.Load: failed to load %s: %v", CounterKey, err)
		errs = append(errs, fmt.Errorf("load counter: %w", err))
	} else if found {
		s.Counter = counter
	}

	return s, errors.Join(errs...)
}

func (r *implRepository) Save(ctx context.Context, s subtask.State) error {
	var errs []error

	tasks := s.Subtasks
	if tasks == nil {
		tasks = []model.Subtask{}
	}
	if err := kvstore.SetJSON(ctx, r.store, SubtasksKey, tasks); err != nil {
		r.l.Warnf(ctx, "kv.Save: failed to save %s: %v", SubtasksKey, err)
		errs = append(errs, fmt.Errorf("save subtasks: %w", err))
	}
	if err := kvstore.SetJSON(ctx, r.store, CounterKey, s.Counter); err != nil {
		r.l.Warnf(ctx, "kv.Save: failed to save %s: %v", CounterKey, err)
		errs = append(errs, fmt.Errorf("save counter: %w", err))
	}

	return errors.Join(errs...)
}
