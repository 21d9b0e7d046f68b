package notification

import (
	"time"

	"task-calendar/internal/model"
)

// Level is the severity an alert is shown with.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// DefaultReminderWindow is how far ahead of a start time a reminder fires.
const DefaultReminderWindow = 60 * time.Minute

// Alert is a rendered notification.
type Alert struct {
	Title string
	Body  string
	// Tag identifies the alert; alerts sharing a tag are collapsed.
	Tag       string
	Level     Level
	SubtaskID int
}

type ReminderInput struct {
	Subtask model.Subtask
	Now     time.Time
}

type CheckInput struct {
	Subtasks []model.Subtask
	Now      time.Time
}

// CheckOutput lists the subtask ids reminded during this check and the ids
// dropped from the sent set because their start has passed.
type CheckOutput struct {
	Reminded []int
	Cleared  []string
}
