package subtask

import (
	"strings"

	"task-calendar/internal/model"
)

// Scope selects how far a mutation reaches within a recurrence series.
type Scope string

const (
	ScopeSingle Scope = "single"
	ScopeSeries Scope = "series"
)

// ParseScope maps user input to a Scope. Anything unrecognised is single.
func ParseScope(s string) Scope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "series", "cascade", "all":
		return ScopeSeries
	}
	return ScopeSingle
}

// Patch is a partial update. A nil field means "no change".
type Patch struct {
	Date             *string              `json:"date,omitempty"`
	StartTime        *string              `json:"startTime,omitempty"`
	EndTime          *string              `json:"endTime,omitempty"`
	Title            *string              `json:"title,omitempty"`
	Description      *string              `json:"description,omitempty"`
	Status           *model.SubtaskStatus `json:"status,omitempty"`
	Priority         *model.Priority      `json:"priority,omitempty"`
	CompletedOnDate  *string              `json:"completedOnDate,omitempty"`
	MajorTaskID      *string              `json:"majorTaskId,omitempty"`
	LinkedSubtaskIDs *[]int               `json:"linkedSubtaskIds,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Date == nil && p.StartTime == nil && p.EndTime == nil &&
		p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.CompletedOnDate == nil && p.MajorTaskID == nil &&
		p.LinkedSubtaskIDs == nil
}

// CreateInput is the input for creating a subtask.
type CreateInput struct {
	Date             string
	StartTime        string
	EndTime          string
	Title            string // defaults to "Subtask #<id>"
	Description      string
	Status           model.SubtaskStatus // defaults to pending
	Priority         model.Priority      // defaults to medium
	MajorTaskID      string
	LinkedSubtaskIDs []int

	IsRecurring       bool
	RecurrencePattern model.RecurrencePattern
	RecurrenceEndDate string
}

// CreateOutput carries the stored subtask and, for a recurring root, its instances.
type CreateOutput struct {
	Subtask   model.Subtask
	Instances []model.Subtask
}

type DetailOutput struct {
	Subtask model.Subtask
}

// ListInput filters the collection. Empty fields do not filter.
// Date takes precedence over the From/To range.
type ListInput struct {
	Date     string
	From     string
	To       string
	Status   model.SubtaskStatus
	SeriesID int // root id; matches the root and its instances
}

type ListOutput struct {
	Subtasks []model.Subtask
	Total    int
}

type UpdateInput struct {
	ID    int
	Patch Patch
	Scope Scope
}

// UpdateOutput reports the subtasks after the patch. Found is false when the
// target id did not exist.
type UpdateOutput struct {
	Found   bool
	Updated []model.Subtask
}

type DeleteInput struct {
	ID    int
	Scope Scope
}

type DeleteOutput struct {
	Found   bool
	Removed int
}
