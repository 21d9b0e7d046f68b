package usecase

import (
	"context"
	"strconv"

	"task-calendar/internal/notification"
)

func (uc *implUseCase) CheckUpcoming(ctx context.Context, input notification.CheckInput) (notification.CheckOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	loaded, err := uc.repo.LoadSent(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "notification.CheckUpcoming: starting with empty sent set: %v", err)
	}
	sent := make(map[string]struct{}, len(loaded))
	for _, id := range loaded {
		sent[id] = struct{}{}
	}

	var out notification.CheckOutput
	for _, s := range input.Subtasks {
		minutes, err := notification.MinutesUntil(uc.parser, s, input.Now)
		if err != nil {
			continue
		}
		key := strconv.Itoa(s.ID)
		_, already := sent[key]

		if minutes < 0 {
			if already {
				delete(sent, key)
				out.Cleared = append(out.Cleared, key)
			}
			continue
		}
		if already || !notification.Remindable(s) || !notification.WithinReminderWindow(minutes, uc.window) {
			continue
		}

		uc.dispatch(ctx, notification.ReminderAlert(s, minutes))
		sent[key] = struct{}{}
		out.Reminded = append(out.Reminded, s.ID)
	}

	// Keep the original order and append new ids after it.
	ids := make([]string, 0, len(sent))
	for _, id := range loaded {
		if _, ok := sent[id]; ok {
			ids = append(ids, id)
			delete(sent, id)
		}
	}
	for _, id := range out.Reminded {
		key := strconv.Itoa(id)
		if _, ok := sent[key]; ok {
			ids = append(ids, key)
			delete(sent, key)
		}
	}

	if err := uc.repo.SaveSent(ctx, ids); err != nil {
		uc.l.Warnf(ctx, "notification.CheckUpcoming: sent set not persisted: %v", err)
	}
	if len(out.Reminded) > 0 || len(out.Cleared) > 0 {
		uc.l.Infof(ctx, "notification.CheckUpcoming: reminded=%v cleared=%v", out.Reminded, out.Cleared)
	}
	return out, nil
}
