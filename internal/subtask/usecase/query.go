package usecase

import (
	"context"

	"task-calendar/internal/subtask"
)

func (uc *implUseCase) Detail(ctx context.Context, id int) (subtask.DetailOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	t, ok := uc.state.Find(id)
	if !ok {
		return subtask.DetailOutput{}, subtask.ErrSubtaskNotFound
	}
	return subtask.DetailOutput{Subtask: t}, nil
}

func (uc *implUseCase) List(ctx context.Context, input subtask.ListInput) (subtask.ListOutput, error) {
	if input.Date != "" && !validDate(input.Date) {
		return subtask.ListOutput{}, subtask.ErrInvalidDate
	}
	if (input.From != "" && !validDate(input.From)) || (input.To != "" && !validDate(input.To)) {
		return subtask.ListOutput{}, subtask.ErrInvalidDate
	}
	if input.From != "" && input.To != "" && input.From > input.To {
		return subtask.ListOutput{}, subtask.ErrInvalidRange
	}
	if input.Status != "" && !input.Status.Valid() {
		return subtask.ListOutput{}, subtask.ErrInvalidStatus
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	out := subtask.Select(uc.state, input)
	return subtask.ListOutput{Subtasks: out, Total: len(out)}, nil
}
