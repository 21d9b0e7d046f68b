package majortask

import "task-calendar/internal/model"

const (
	DefaultColor    = "red"
	DefaultStartDay = 1
	DefaultEndDay   = 3
)

// CreateInput places a new task in the week containing WeekStart (any day of
// that week; empty means the current week). Zero fields take the defaults.
type CreateInput struct {
	WeekStart string
	Title     string
	Color     string
	StartDay  int
	EndDay    int
}

type CreateOutput struct {
	Task model.MajorTask
}

// ListInput selects one week; empty WeekStart lists every week.
type ListInput struct {
	WeekStart string
}

type ListOutput struct {
	Tasks []model.MajorTask
	Total int
}

// Patch is a partial update. A nil field means "no change".
type Patch struct {
	Title    *string `json:"title,omitempty"`
	Color    *string `json:"color,omitempty"`
	StartDay *int    `json:"startDay,omitempty"`
	EndDay   *int    `json:"endDay,omitempty"`
}

type UpdateInput struct {
	ID    string
	Patch Patch
}

type UpdateOutput struct {
	Found bool
	Task  model.MajorTask
}

type DeleteOutput struct {
	Found bool
}

// State is the persisted collection plus the next id to hand out.
type State struct {
	Tasks   []model.MajorTask
	Counter int
}
