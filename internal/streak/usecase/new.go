package usecase

import (
	"context"
	"sync"
	"time"

	"task-calendar/internal/streak"
	"task-calendar/internal/streak/repository"
	"task-calendar/pkg/datemath"
	pkgLog "task-calendar/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	parser *datemath.Parser
	mu     sync.Mutex
}

// New creates a streak UseCase; days are counted in the parser's timezone.
func New(l pkgLog.Logger, repo repository.Repository, parser *datemath.Parser) *implUseCase {
	return &implUseCase{l: l, repo: repo, parser: parser}
}

func (uc *implUseCase) Record(ctx context.Context, now time.Time) (streak.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := streak.Advance(uc.loadLocked(ctx), uc.parser.Today(now))
	uc.saveLocked(ctx, next)
	return next, nil
}

func (uc *implUseCase) Get(ctx context.Context) (streak.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.loadLocked(ctx), nil
}

// Reset zeroes the counter and keeps the last active date.
func (uc *implUseCase) Reset(ctx context.Context) (streak.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.loadLocked(ctx)
	s.Count = 0
	uc.saveLocked(ctx, s)
	uc.l.Infof(ctx, "streak.Reset: counter cleared")
	return s, nil
}

func (uc *implUseCase) loadLocked(ctx context.Context) streak.State {
	s, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "streak.load: %v", err)
	}
	return s
}

func (uc *implUseCase) saveLocked(ctx context.Context, s streak.State) {
	if err := uc.repo.Save(ctx, s); err != nil {
		uc.l.Warnf(ctx, "streak.save: write dropped: %v", err)
	}
}
