package notification

import (
	"fmt"
	"math"
	"time"

	"task-calendar/internal/model"
	"task-calendar/pkg/datemath"
)

// MinutesUntil returns the whole minutes from now until the subtask starts,
// rounded down. The start is read in the parser's location.
func MinutesUntil(p *datemath.Parser, s model.Subtask, now time.Time) (int, error) {
	if s.StartTime == "" {
		return 0, ErrNoStartTime
	}
	start, err := p.At(s.Date, s.StartTime)
	if err != nil {
		return 0, fmt.Errorf("subtask %d: %w", s.ID, err)
	}
	return int(math.Floor(start.Sub(now).Minutes())), nil
}

// WithinReminderWindow reports whether a start minutesUntil away is in the
// future and no further than window.
func WithinReminderWindow(minutesUntil int, window time.Duration) bool {
	return minutesUntil > 0 && minutesUntil <= int(window/time.Minute)
}

// Remindable reports whether a subtask is still worth reminding about.
func Remindable(s model.Subtask) bool {
	return s.Status != model.StatusCompleted && s.Status != model.StatusCancelled
}

func CreatedAlert(s model.Subtask) Alert {
	return Alert{
		Title:     "Event Created",
		Body:      fmt.Sprintf("%s scheduled for %s at %s", s.Title, s.Date, s.StartTime),
		Tag:       fmt.Sprintf("event-created-%d", s.ID),
		Level:     LevelSuccess,
		SubtaskID: s.ID,
	}
}

func ModifiedAlert(s model.Subtask) Alert {
	return Alert{
		Title:     "Event Updated",
		Body:      fmt.Sprintf("%s has been modified", s.Title),
		Tag:       fmt.Sprintf("event-updated-%d", s.ID),
		Level:     LevelInfo,
		SubtaskID: s.ID,
	}
}

func ReminderAlert(s model.Subtask, minutesUntil int) Alert {
	return Alert{
		Title:     "Event Reminder",
		Body:      fmt.Sprintf("%s starts in %d minutes", s.Title, minutesUntil),
		Tag:       fmt.Sprintf("event-reminder-%d", s.ID),
		Level:     LevelWarning,
		SubtaskID: s.ID,
	}
}
