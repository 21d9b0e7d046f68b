package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"task-calendar/internal/majortask"
	"task-calendar/internal/majortask/repository"
	"task-calendar/internal/model"
	pkgLog "task-calendar/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time

	mu     sync.Mutex
	state  majortask.State
	loaded bool
}

// New creates a major task UseCase. now supplies the current week when a
// request names none; nil means time.Now.
func New(l pkgLog.Logger, repo repository.Repository, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		now:   now,
		state: majortask.State{Tasks: []model.MajorTask{}, Counter: 1},
	}
}

func (uc *implUseCase) ensureLoadedLocked(ctx context.Context) {
	if uc.loaded {
		return
	}
	s, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "majortask.load: degraded load, continuing: %v", err)
	}
	if s.Tasks == nil {
		s.Tasks = []model.MajorTask{}
	}
	if s.Counter < 1 {
		s.Counter = 1
	}
	for _, t := range s.Tasks {
		if n, err := strconv.Atoi(t.ID); err == nil && n >= s.Counter {
			s.Counter = n + 1
		}
	}
	uc.state = s
	uc.loaded = true
}

func (uc *implUseCase) commitLocked(ctx context.Context, s majortask.State) {
	uc.state = s
	if err := uc.repo.Save(ctx, s); err != nil {
		uc.l.Warnf(ctx, "majortask.save: write dropped: %v", err)
	}
}
