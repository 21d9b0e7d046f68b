package usecase

import (
	"context"
	"fmt"
	"strconv"

	"task-calendar/internal/majortask"
	"task-calendar/internal/model"
	"task-calendar/pkg/datemath"
)

func (uc *implUseCase) Create(ctx context.Context, input majortask.CreateInput) (majortask.CreateOutput, error) {
	week, err := uc.resolveWeek(input.WeekStart)
	if err != nil {
		return majortask.CreateOutput{}, err
	}
	if input.StartDay == 0 {
		input.StartDay = majortask.DefaultStartDay
	}
	if input.EndDay == 0 {
		input.EndDay = majortask.DefaultEndDay
	}
	if !majortask.ValidDays(input.StartDay, input.EndDay) {
		return majortask.CreateOutput{}, majortask.ErrInvalidDayRange
	}
	if input.Color == "" {
		input.Color = majortask.DefaultColor
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	next := uc.state
	id := strconv.Itoa(next.Counter)
	next.Counter++

	t := model.MajorTask{
		ID:        id,
		Title:     input.Title,
		Color:     input.Color,
		StartDay:  input.StartDay,
		EndDay:    input.EndDay,
		WeekStart: week,
	}
	if t.Title == "" {
		t.Title = fmt.Sprintf("Sample Task #%s", id)
	}
	next.Tasks = append(append(make([]model.MajorTask, 0, len(next.Tasks)+1), next.Tasks...), t)

	uc.commitLocked(ctx, next)
	uc.l.Infof(ctx, "majortask.Create: id=%s week=%s", t.ID, t.WeekStart)

	return majortask.CreateOutput{Task: t}, nil
}

func (uc *implUseCase) List(ctx context.Context, input majortask.ListInput) (majortask.ListOutput, error) {
	week := ""
	if input.WeekStart != "" {
		w, err := majortask.WeekOf(input.WeekStart)
		if err != nil {
			return majortask.ListOutput{}, err
		}
		week = w
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	out := make([]model.MajorTask, 0, len(uc.state.Tasks))
	for _, t := range uc.state.Tasks {
		if week == "" || t.WeekStart == week {
			out = append(out, t)
		}
	}
	return majortask.ListOutput{Tasks: out, Total: len(out)}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input majortask.UpdateInput) (majortask.UpdateOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	idx := uc.indexLocked(input.ID)
	if idx < 0 {
		return majortask.UpdateOutput{}, nil
	}

	t := uc.state.Tasks[idx]
	p := input.Patch
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.StartDay != nil {
		t.StartDay = *p.StartDay
	}
	if p.EndDay != nil {
		t.EndDay = *p.EndDay
	}
	if !majortask.ValidDays(t.StartDay, t.EndDay) {
		return majortask.UpdateOutput{}, majortask.ErrInvalidDayRange
	}

	next := uc.state
	next.Tasks = append([]model.MajorTask(nil), uc.state.Tasks...)
	next.Tasks[idx] = t
	uc.commitLocked(ctx, next)

	return majortask.UpdateOutput{Found: true, Task: t}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) (majortask.DeleteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.ensureLoadedLocked(ctx)

	idx := uc.indexLocked(id)
	if idx < 0 {
		return majortask.DeleteOutput{}, nil
	}

	next := uc.state
	next.Tasks = make([]model.MajorTask, 0, len(uc.state.Tasks)-1)
	next.Tasks = append(next.Tasks, uc.state.Tasks[:idx]...)
	next.Tasks = append(next.Tasks, uc.state.Tasks[idx+1:]...)
	uc.commitLocked(ctx, next)
	uc.l.Infof(ctx, "majortask.Delete: id=%s", id)

	return majortask.DeleteOutput{Found: true}, nil
}

func (uc *implUseCase) indexLocked(id string) int {
	for i, t := range uc.state.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (uc *implUseCase) resolveWeek(date string) (string, error) {
	if date == "" {
		return datemath.WeekStart(uc.now()).Format(datemath.DateFormat), nil
	}
	return majortask.WeekOf(date)
}
