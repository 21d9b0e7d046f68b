package subtask

import (
	"fmt"
	"strconv"
	"strings"

	"task-calendar/internal/model"
)

// TimeToMinutes converts "HH:MM" to minutes after midnight.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	return h*60 + m, nil
}

// MinutesToTime formats minutes after midnight as "HH:MM", wrapping past 24h.
func MinutesToTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", (minutes/60)%24, minutes%60)
}

// Duration returns the subtask length in minutes. Malformed times count as 0.
func Duration(t model.Subtask) int {
	start, err := TimeToMinutes(t.StartTime)
	if err != nil {
		return 0
	}
	end, err := TimeToMinutes(t.EndTime)
	if err != nil {
		return 0
	}
	return end - start
}
