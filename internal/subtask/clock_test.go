package subtask_test

import (
	"errors"
	"testing"

	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}
	for _, tt := range tests {
		got, err := subtask.TimeToMinutes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("TimeToMinutes(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, subtask.ErrInvalidTime) {
			t.Errorf("TimeToMinutes(%q) err = %v, want ErrInvalidTime", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := map[int]string{0: "00:00", 570: "09:30", 1439: "23:59", 1500: "01:00"}
	for in, want := range tests {
		if got := subtask.MinutesToTime(in); got != want {
			t.Errorf("MinutesToTime(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestDuration(t *testing.T) {
	if got := subtask.Duration(model.Subtask{StartTime: "09:15", EndTime: "10:45"}); got != 90 {
		t.Errorf("Duration = %d, want 90", got)
	}
	if got := subtask.Duration(model.Subtask{StartTime: "bad", EndTime: "10:45"}); got != 0 {
		t.Errorf("Duration with bad start = %d, want 0", got)
	}
}
