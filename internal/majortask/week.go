package majortask

import (
	"time"

	"task-calendar/pkg/datemath"
)

// WeekOf returns the Monday of the week containing date as YYYY-MM-DD.
func WeekOf(date string) (string, error) {
	d, err := time.Parse(datemath.DateFormat, date)
	if err != nil {
		return "", ErrInvalidWeekStart
	}
	return datemath.WeekStart(d).Format(datemath.DateFormat), nil
}

// ValidDays reports whether start and end describe a span inside one week.
func ValidDays(start, end int) bool {
	return start >= 1 && end <= 7 && start <= end
}
