package activity

import (
	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
)

// WorkFromSubtasks credits each subtask with its scheduled length. Callers
// pass completed subtasks only.
func WorkFromSubtasks(done []model.Subtask) []CompletedWork {
	work := make([]CompletedWork, 0, len(done))
	for _, s := range done {
		work = append(work, CompletedWork{
			Date:            s.Date,
			CompletedOnDate: s.CompletedOnDate,
			Minutes:         subtask.Duration(s),
		})
	}
	return work
}
