package majortask

import "errors"

var (
	ErrInvalidWeekStart = errors.New("invalid week start date")
	ErrInvalidDayRange  = errors.New("days must satisfy 1 <= startDay <= endDay <= 7")
)
