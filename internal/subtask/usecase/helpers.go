package usecase

import (
	"context"
	"strings"
	"time"

	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
	"task-calendar/pkg/datemath"
)

// ensureLoadedLocked reads the persisted state once. Read failures are logged
// and the store continues with whatever could be read.
func (uc *implUseCase) ensureLoadedLocked(ctx context.Context) {
	if uc.loaded {
		return
	}
	s, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "subtask.load: degraded load, continuing: %v", err)
	}
	uc.state = subtask.Normalize(s)
	uc.loaded = true
	uc.l.Debugf(ctx, "subtask.load: %d subtasks, next id %d", len(uc.state.Subtasks), uc.state.Counter)
}

// commitLocked replaces the in-memory state and persists it. A failed write is
// logged and dropped; the in-memory state stays authoritative.
func (uc *implUseCase) commitLocked(ctx context.Context, next subtask.State) {
	uc.state = next
	if err := uc.repo.Save(ctx, next); err != nil {
		uc.l.Warnf(ctx, "subtask.save: write dropped: %v", err)
	}
}

func (uc *implUseCase) notifyCreated(ctx context.Context, t model.Subtask) {
	if uc.notifier != nil {
		uc.notifier.NotifyCreated(ctx, t)
	}
}

func (uc *implUseCase) notifyModified(ctx context.Context, t model.Subtask) {
	if uc.notifier != nil {
		uc.notifier.NotifyModified(ctx, t)
	}
}

func validDate(s string) bool {
	_, err := time.Parse(datemath.DateFormat, strings.TrimSpace(s))
	return err == nil
}

func validClock(s string) bool {
	if s == "" {
		return true
	}
	_, err := subtask.TimeToMinutes(s)
	return err == nil
}

func validatePatch(p subtask.Patch) error {
	if p.Date != nil && !validDate(*p.Date) {
		return subtask.ErrInvalidDate
	}
	if p.CompletedOnDate != nil && *p.CompletedOnDate != "" && !validDate(*p.CompletedOnDate) {
		return subtask.ErrInvalidDate
	}
	if (p.StartTime != nil && !validClock(*p.StartTime)) || (p.EndTime != nil && !validClock(*p.EndTime)) {
		return subtask.ErrInvalidTime
	}
	if p.Status != nil && !p.Status.Valid() {
		return subtask.ErrInvalidStatus
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return subtask.ErrInvalidPriority
	}
	return nil
}
