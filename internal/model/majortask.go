package model

// MajorTask is a multi-day bar drawn across one week of the calendar.
// StartDay and EndDay count from 1 (Monday) to 7 (Sunday).
type MajorTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	StartDay  int    `json:"startDay"`
	EndDay    int    `json:"endDay"`
	WeekStart string `json:"weekStart"`
}
