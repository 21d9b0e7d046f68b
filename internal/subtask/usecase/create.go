package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
)

// Create stores a new subtask. A recurring root gets its instances generated
// in the same commit; malformed recurrence settings store the root alone.
func (uc *implUseCase) Create(ctx context.Context, input subtask.CreateInput) (subtask.CreateOutput, error) {
	if !validDate(input.Date) {
		return subtask.CreateOutput{}, subtask.ErrInvalidDate
	}
	if input.RecurrenceEndDate != "" && !validDate(input.RecurrenceEndDate) {
		return subtask.CreateOutput{}, subtask.ErrInvalidDate
	}
	if !validClock(input.StartTime) || !validClock(input.EndTime) {
		return subtask.CreateOutput{}, subtask.ErrInvalidTime
	}
	if input.Status == "" {
		input.Status = model.StatusPending
	}
	if !input.Status.Valid() {
		return subtask.CreateOutput{}, subtask.ErrInvalidStatus
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !input.Priority.Valid() {
		return subtask.CreateOutput{}, subtask.ErrInvalidPriority
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	id, next := uc.state.NextID()
	root := model.Subtask{
		ID:                id,
		Date:              strings.TrimSpace(input.Date),
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		Title:             input.Title,
		Description:       input.Description,
		Status:            input.Status,
		Priority:          input.Priority,
		MajorTaskID:       input.MajorTaskID,
		IsRecurring:       input.IsRecurring,
		RecurrencePattern: input.RecurrencePattern,
		RecurrenceEndDate: input.RecurrenceEndDate,
	}
	if root.Title == "" {
		root.Title = fmt.Sprintf("Subtask #%d", id)
	}
	if len(input.LinkedSubtaskIDs) > 0 {
		root.LinkedSubtaskIDs = append([]int(nil), input.LinkedSubtaskIDs...)
	}

	instances, next := subtask.GenerateInstances(next, root)
	if root.IsRecurring && len(instances) == 0 {
		uc.l.Warnf(ctx, "subtask.Create: recurring subtask %d produced no instances (pattern=%q end=%q)",
			id, root.RecurrencePattern, root.RecurrenceEndDate)
	}

	uc.commitLocked(ctx, next.Append(root).Append(instances...))
	uc.l.Infof(ctx, "subtask.Create: id=%d date=%s instances=%d", root.ID, root.Date, len(instances))

	uc.notifyCreated(ctx, root)

	return subtask.CreateOutput{Subtask: root, Instances: instances}, nil
}
