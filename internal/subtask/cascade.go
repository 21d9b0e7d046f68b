package subtask

import "task-calendar/internal/model"

// SeriesRootID returns the id of the root a subtask belongs to. Roots and
// standalone subtasks are their own root.
func SeriesRootID(t model.Subtask) int {
	if t.HasParent() {
		return t.RecurrenceParentID
	}
	return t.ID
}

func inSeries(rootID int) func(model.Subtask) bool {
	return func(t model.Subtask) bool {
		return t.ID == rootID || t.RecurrenceParentID == rootID
	}
}

// Delete removes the target (ScopeSingle) or the target's whole series
// (ScopeSeries) and reports how many subtasks were removed. When the target
// is an instance its parent id selects the series. An unknown id returns s
// unchanged with zero removed.
func Delete(s State, id int, scope Scope) (State, int) {
	target, ok := s.Find(id)
	if !ok {
		return s, 0
	}

	match := func(t model.Subtask) bool { return t.ID == id }
	if scope == ScopeSeries {
		match = inSeries(SeriesRootID(target))
	}

	next := s.filter(func(t model.Subtask) bool { return !match(t) })
	return next, len(s.Subtasks) - len(next.Subtasks)
}

// Update applies p to the target (ScopeSingle) or to the series root and all
// of its instances (ScopeSeries). A series update never changes a task's date,
// even when p carries one. The updated subtasks are returned in collection
// order; an unknown id returns s unchanged and no subtasks.
func Update(s State, id int, p Patch, scope Scope) (State, []model.Subtask) {
	target, ok := s.Find(id)
	if !ok {
		return s, nil
	}

	match := func(t model.Subtask) bool { return t.ID == id }
	if scope == ScopeSeries {
		match = inSeries(SeriesRootID(target))
	}

	out := make([]model.Subtask, 0, len(s.Subtasks))
	updated := make([]model.Subtask, 0)
	for _, t := range s.Subtasks {
		if !match(t) {
			out = append(out, t)
			continue
		}
		u := applyPatch(t.Clone(), p)
		if scope == ScopeSeries {
			u.Date = t.Date
		}
		out = append(out, u)
		updated = append(updated, u)
	}

	s.Subtasks = out
	return s, updated
}

func applyPatch(t model.Subtask, p Patch) model.Subtask {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		t.EndTime = *p.EndTime
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.CompletedOnDate != nil {
		t.CompletedOnDate = *p.CompletedOnDate
	}
	if p.MajorTaskID != nil {
		t.MajorTaskID = *p.MajorTaskID
	}
	if p.LinkedSubtaskIDs != nil {
		if *p.LinkedSubtaskIDs == nil {
			t.LinkedSubtaskIDs = nil
		} else {
			t.LinkedSubtaskIDs = append([]int(nil), (*p.LinkedSubtaskIDs)...)
		}
	}
	return t
}
