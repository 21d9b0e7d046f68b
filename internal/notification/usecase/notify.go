package usecase

import (
	"context"

	"task-calendar/internal/model"
	"task-calendar/internal/notification"
)

func (uc *implUseCase) NotifyCreated(ctx context.Context, s model.Subtask) {
	uc.dispatch(ctx, notification.CreatedAlert(s))
}

func (uc *implUseCase) NotifyModified(ctx context.Context, s model.Subtask) {
	uc.dispatch(ctx, notification.ModifiedAlert(s))
}

func (uc *implUseCase) NotifyReminder(ctx context.Context, input notification.ReminderInput) {
	minutes, err := notification.MinutesUntil(uc.parser, input.Subtask, input.Now)
	if err != nil {
		uc.l.Warnf(ctx, "notification.NotifyReminder: %v", err)
		return
	}
	uc.dispatch(ctx, notification.ReminderAlert(input.Subtask, minutes))
}

// dispatch sends a to every sink. Sink failures are logged only.
func (uc *implUseCase) dispatch(ctx context.Context, a notification.Alert) {
	if uc.recent != nil {
		if uc.recent.Contains(a.Tag) {
			uc.l.Debugf(ctx, "notification.dispatch: duplicate %s dropped", a.Tag)
			return
		}
		uc.recent.Add(a.Tag, struct{}{})
	}

	for _, s := range uc.sinks {
		if err := s.Send(ctx, a); err != nil {
			uc.l.Errorf(ctx, "notification.dispatch: sink %s failed for %s: %v", s.Name(), a.Tag, err)
		}
	}
}
