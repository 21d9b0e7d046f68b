package streak_test

import (
	"testing"

	"task-calendar/internal/streak"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name  string
		in    streak.State
		today string
		want  streak.State
	}{
		{"first use", streak.State{}, "2024-01-10", streak.State{Count: 1, LastActiveDate: "2024-01-10"}},
		{"consecutive day", streak.State{Count: 4, LastActiveDate: "2024-01-09"}, "2024-01-10", streak.State{Count: 5, LastActiveDate: "2024-01-10"}},
		{"across month end", streak.State{Count: 2, LastActiveDate: "2024-02-29"}, "2024-03-01", streak.State{Count: 3, LastActiveDate: "2024-03-01"}},
		{"same day", streak.State{Count: 4, LastActiveDate: "2024-01-10"}, "2024-01-10", streak.State{Count: 4, LastActiveDate: "2024-01-10"}},
		{"same day after reset", streak.State{Count: 0, LastActiveDate: "2024-01-10"}, "2024-01-10", streak.State{Count: 1, LastActiveDate: "2024-01-10"}},
		{"gap resets", streak.State{Count: 9, LastActiveDate: "2024-01-01"}, "2024-01-10", streak.State{Count: 1, LastActiveDate: "2024-01-10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streak.Advance(tt.in, tt.today); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
