package subtask

import (
	"time"

	"task-calendar/internal/model"
	"task-calendar/pkg/datemath"
)

const (
	// MaxInstances caps a single generation call regardless of the date range.
	MaxInstances = 365
	// DefaultHorizonMonths is used when a root has no recurrence end date.
	DefaultHorizonMonths = 12
)

// GenerateInstances derives the instances of a recurring root, starting one
// step after the root's date and ending on RecurrenceEndDate inclusive.
// Each instance takes one id from the state's counter, so the returned state
// must replace the one passed in. A root that is not recurring, has no valid
// pattern, an unparseable date or an unparseable end date yields no instances
// and an unchanged state.
func GenerateInstances(s State, root model.Subtask) ([]model.Subtask, State) {
	if !root.IsRecurring || root.IsRecurrenceInstance || !root.RecurrencePattern.Valid() {
		return nil, s
	}

	start, err := time.Parse(datemath.DateFormat, root.Date)
	if err != nil {
		return nil, s
	}
	end, ok := RecurrenceEnd(root, start)
	if !ok {
		return nil, s
	}
	unit := patternUnit(root.RecurrencePattern)

	instances := make([]model.Subtask, 0)
	next := s
	for cur := datemath.Step(start, unit, 1); !cur.After(end) && len(instances) < MaxInstances; cur = datemath.Step(cur, unit, 1) {
		var id int
		id, next = next.NextID()

		inst := root.Clone()
		inst.ID = id
		inst.Date = cur.Format(datemath.DateFormat)
		inst.Status = model.StatusPending
		inst.RecurrenceParentID = root.ID
		inst.IsRecurrenceInstance = true
		instances = append(instances, inst)
	}

	return instances, next
}

// RecurrenceEnd returns the inclusive upper bound for a root starting at start.
// A missing end date falls back to DefaultHorizonMonths after start; an
// unparseable one reports false.
func RecurrenceEnd(root model.Subtask, start time.Time) (time.Time, bool) {
	if root.RecurrenceEndDate == "" {
		return start.AddDate(0, DefaultHorizonMonths, 0), true
	}
	end, err := time.Parse(datemath.DateFormat, root.RecurrenceEndDate)
	if err != nil {
		return time.Time{}, false
	}
	return end, true
}

func patternUnit(p model.RecurrencePattern) datemath.Unit {
	switch p {
	case model.PatternWeekly:
		return datemath.UnitWeek
	case model.PatternMonthly:
		return datemath.UnitMonth
	default:
		return datemath.UnitDay
	}
}
