package streak

import "task-calendar/pkg/datemath"

// Advance records activity on today.
//
// First activity starts the streak at 1. Activity on the day after the last
// active date extends it. A second activity on the same day leaves it as is,
// unless it was reset to zero. Any gap restarts it at 1.
func Advance(s State, today string) State {
	switch {
	case s.LastActiveDate == "":
		return State{Count: 1, LastActiveDate: today}
	case s.LastActiveDate == today:
		if s.Count < 1 {
			s.Count = 1
		}
		return s
	case s.LastActiveDate == datemath.Yesterday(today):
		return State{Count: s.Count + 1, LastActiveDate: today}
	}
	return State{Count: 1, LastActiveDate: today}
}
