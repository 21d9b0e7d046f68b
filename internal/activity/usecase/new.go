package usecase

import (
	"context"
	"sync"

	"task-calendar/internal/activity/repository"
	"task-calendar/internal/model"
	pkgLog "task-calendar/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	mu     sync.Mutex
	rows   []model.DailyActivity
	loaded bool
}

// New creates an activity UseCase.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo, rows: []model.DailyActivity{}}
}

func (uc *implUseCase) ensureLoadedLocked(ctx context.Context) {
	if uc.loaded {
		return
	}
	rows, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "activity.load: starting empty: %v", err)
	}
	uc.rows = rows
	uc.loaded = true
}

func (uc *implUseCase) commitLocked(ctx context.Context, rows []model.DailyActivity) {
	uc.rows = rows
	if err := uc.repo.Save(ctx, rows); err != nil {
		uc.l.Warnf(ctx, "activity.save: write dropped: %v", err)
	}
}
