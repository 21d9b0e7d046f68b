package usecase

import (
	"sync"

	"task-calendar/internal/subtask"
	"task-calendar/internal/subtask/repository"
	pkgLog "task-calendar/pkg/log"
)

// implUseCase is the subtask store. It owns the current State; the mutex keeps
// each operation a single read-modify-write when HTTP handlers run concurrently.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	notifier subtask.Notifier

	mu     sync.Mutex
	state  subtask.State
	loaded bool
}

// New creates a subtask store. notifier may be nil.
func New(l pkgLog.Logger, repo repository.Repository, notifier subtask.Notifier) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		notifier: notifier,
		state:    subtask.NewState(),
	}
}
