package usecase

import (
	"context"

	"task-calendar/internal/subtask"
)

// Update patches one subtask or its whole series. An unknown id leaves the
// collection untouched and reports Found=false.
func (uc *implUseCase) Update(ctx context.Context, input subtask.UpdateInput) (subtask.UpdateOutput, error) {
	if err := validatePatch(input.Patch); err != nil {
		return subtask.UpdateOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	target, ok := uc.state.Find(input.ID)
	if !ok {
		uc.l.Debugf(ctx, "subtask.Update: id=%d not found, nothing to do", input.ID)
		return subtask.UpdateOutput{}, nil
	}

	next, updated := subtask.Update(uc.state, input.ID, input.Patch, input.Scope)
	uc.commitLocked(ctx, next)
	uc.l.Infof(ctx, "subtask.Update: id=%d scope=%s updated=%d", input.ID, input.Scope, len(updated))

	for _, u := range updated {
		if u.ID == target.ID {
			uc.notifyModified(ctx, u)
		}
	}

	return subtask.UpdateOutput{Found: true, Updated: updated}, nil
}

// Delete removes one subtask or its whole series. An unknown id leaves the
// collection untouched and reports Found=false.
func (uc *implUseCase) Delete(ctx context.Context, input subtask.DeleteInput) (subtask.DeleteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	next, removed := subtask.Delete(uc.state, input.ID, input.Scope)
	if removed == 0 {
		uc.l.Debugf(ctx, "subtask.Delete: id=%d not found, nothing to do", input.ID)
		return subtask.DeleteOutput{}, nil
	}

	uc.commitLocked(ctx, next)
	uc.l.Infof(ctx, "subtask.Delete: id=%d scope=%s removed=%d", input.ID, input.Scope, removed)

	return subtask.DeleteOutput{Found: true, Removed: removed}, nil
}
