package usecase

import (
	"context"
	"time"

	"task-calendar/internal/activity"
	"task-calendar/pkg/datemath"
)

func (uc *implUseCase) AddTime(ctx context.Context, input activity.AddTimeInput) (activity.AddTimeOutput, error) {
	if !validDate(input.Date) {
		return activity.AddTimeOutput{}, activity.ErrInvalidDate
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	rows, total := activity.AddTime(uc.rows, input.Date, input.Minutes)
	uc.commitLocked(ctx, rows)
	uc.l.Debugf(ctx, "activity.AddTime: %s %+d -> %d", input.Date, input.Minutes, total)

	return activity.AddTimeOutput{Date: input.Date, TotalMinutes: total}, nil
}

func (uc *implUseCase) TotalFor(ctx context.Context, date string) (int, error) {
	if !validDate(date) {
		return 0, activity.ErrInvalidDate
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	return activity.TotalFor(uc.rows, date), nil
}

func (uc *implUseCase) List(ctx context.Context, input activity.ListInput) (activity.ListOutput, error) {
	if (input.From != "" && !validDate(input.From)) || (input.To != "" && !validDate(input.To)) {
		return activity.ListOutput{}, activity.ErrInvalidDate
	}
	if input.From != "" && input.To != "" && input.From > input.To {
		return activity.ListOutput{}, activity.ErrInvalidRange
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	rows := activity.Between(uc.rows, input.From, input.To)
	return activity.ListOutput{Activities: rows, Total: len(rows)}, nil
}

func (uc *implUseCase) Repopulate(ctx context.Context, input activity.RepopulateInput) (activity.ListOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	rows := activity.Repopulate(uc.rows, input.Work)
	uc.commitLocked(ctx, rows)
	uc.l.Infof(ctx, "activity.Repopulate: %d work items over %d days", len(input.Work), len(rows))

	return activity.ListOutput{Activities: rows, Total: len(rows)}, nil
}

func validDate(s string) bool {
	_, err := time.Parse(datemath.DateFormat, s)
	return err == nil
}
