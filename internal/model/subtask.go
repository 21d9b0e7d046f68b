package model

// SubtaskStatus is the lifecycle state of a subtask.
type SubtaskStatus string

const (
	StatusPending   SubtaskStatus = "pending"
	StatusCompleted SubtaskStatus = "completed"
	StatusCancelled SubtaskStatus = "cancelled"
)

func (s SubtaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Priority of a subtask.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// RecurrencePattern is the step between two instances of a recurring subtask.
type RecurrencePattern string

const (
	PatternDaily   RecurrencePattern = "daily"
	PatternWeekly  RecurrencePattern = "weekly"
	PatternMonthly RecurrencePattern = "monthly"
)

func (p RecurrencePattern) Valid() bool {
	switch p {
	case PatternDaily, PatternWeekly, PatternMonthly:
		return true
	}
	return false
}

// Subtask is a date-stamped calendar entry. Field names follow the persisted
// `calendar_subtasks` layout.
type Subtask struct {
	ID               int           `json:"id"`
	Date             string        `json:"date"`      // YYYY-MM-DD
	StartTime        string        `json:"startTime"` // HH:MM
	EndTime          string        `json:"endTime"`   // HH:MM
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Status           SubtaskStatus `json:"status"`
	Priority         Priority      `json:"priority,omitempty"`
	CompletedOnDate  string        `json:"completedOnDate,omitempty"`
	MajorTaskID      string        `json:"majorTaskId,omitempty"`
	LinkedSubtaskIDs []int         `json:"linkedSubtaskIds,omitempty"`

	IsRecurring       bool              `json:"isRecurring,omitempty"`
	RecurrencePattern RecurrencePattern `json:"recurrencePattern,omitempty"`
	RecurrenceEndDate string            `json:"recurrenceEndDate,omitempty"`
	// RecurrenceParentID is 0 for roots and standalone subtasks; ids start at 1.
	RecurrenceParentID   int  `json:"recurrenceParentId,omitempty"`
	IsRecurrenceInstance bool `json:"isRecurrenceInstance,omitempty"`
}

// HasParent reports whether the subtask points back to a recurrence root.
func (s Subtask) HasParent() bool {
	return s.RecurrenceParentID != 0
}

// Clone returns a copy that shares no slices with s.
func (s Subtask) Clone() Subtask {
	out := s
	if s.LinkedSubtaskIDs != nil {
		out.LinkedSubtaskIDs = append([]int(nil), s.LinkedSubtaskIDs...)
	}
	return out
}
