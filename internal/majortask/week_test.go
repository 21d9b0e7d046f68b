package majortask_test

import (
	"errors"
	"testing"

	"task-calendar/internal/majortask"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday
		{"2024-01-03", "2024-01-01"},
		{"2024-01-07", "2024-01-01"}, // Sunday belongs to the previous Monday
		{"2024-03-01", "2024-02-26"},
	}
	for _, tt := range tests {
		got, err := majortask.WeekOf(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("WeekOf(%s) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}
	if _, err := majortask.WeekOf("next week"); !errors.Is(err, majortask.ErrInvalidWeekStart) {
		t.Errorf("err = %v", err)
	}
}

func TestValidDays(t *testing.T) {
	tests := []struct {
		start, end int
		want       bool
	}{
		{1, 3, true},
		{7, 7, true},
		{0, 3, false},
		{4, 2, false},
		{1, 8, false},
	}
	for _, tt := range tests {
		if got := majortask.ValidDays(tt.start, tt.end); got != tt.want {
			t.Errorf("ValidDays(%d,%d) = %v", tt.start, tt.end, got)
		}
	}
}
