package http

import (
	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
)

// --- Request DTOs ---

type createReq struct {
	Date              string `json:"date" binding:"required"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Title             string `json:"title" binding:"max=255"`
	Description       string `json:"description" binding:"max=2000"`
	Status            string `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Priority          string `json:"priority" binding:"omitempty,oneof=high medium low"`
	MajorTaskID       string `json:"majorTaskId"`
	LinkedSubtaskIDs  []int  `json:"linkedSubtaskIds"`
	IsRecurring       bool   `json:"isRecurring"`
	RecurrencePattern string `json:"recurrencePattern"`
	RecurrenceEndDate string `json:"recurrenceEndDate"`
}

func (r createReq) toInput() subtask.CreateInput {
	return subtask.CreateInput{
		Date:              r.Date,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Title:             r.Title,
		Description:       r.Description,
		Status:            model.SubtaskStatus(r.Status),
		Priority:          model.Priority(r.Priority),
		MajorTaskID:       r.MajorTaskID,
		LinkedSubtaskIDs:  r.LinkedSubtaskIDs,
		IsRecurring:       r.IsRecurring,
		RecurrencePattern: model.RecurrencePattern(r.RecurrencePattern),
		RecurrenceEndDate: r.RecurrenceEndDate,
	}
}

// ---

type listReq struct {
	Date     string `form:"date"`
	From     string `form:"from"`
	To       string `form:"to"`
	Status   string `form:"status"`
	SeriesID int    `form:"series_id" binding:"min=0"`
}

func (r listReq) toInput() subtask.ListInput {
	return subtask.ListInput{
		Date:     r.Date,
		From:     r.From,
		To:       r.To,
		Status:   model.SubtaskStatus(r.Status),
		SeriesID: r.SeriesID,
	}
}

// ---

// updateReq is a partial update; omitted fields are left unchanged.
type updateReq struct {
	ID    int           `json:"-"`
	Scope subtask.Scope `json:"-"`
	subtask.Patch
}

func (r updateReq) toInput() subtask.UpdateInput {
	return subtask.UpdateInput{ID: r.ID, Patch: r.Patch, Scope: r.Scope}
}

type deleteReq struct {
	ID    int
	Scope subtask.Scope
}

func (r deleteReq) toInput() subtask.DeleteInput {
	return subtask.DeleteInput{ID: r.ID, Scope: r.Scope}
}

// --- Response DTOs ---

type subtaskResp struct {
	ID                   int    `json:"id"`
	Date                 string `json:"date"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	Status               string `json:"status"`
	Priority             string `json:"priority"`
	DurationMinutes      int    `json:"durationMinutes"`
	CompletedOnDate      string `json:"completedOnDate,omitempty"`
	MajorTaskID          string `json:"majorTaskId,omitempty"`
	LinkedSubtaskIDs     []int  `json:"linkedSubtaskIds,omitempty"`
	IsRecurring          bool   `json:"isRecurring"`
	RecurrencePattern    string `json:"recurrencePattern,omitempty"`
	RecurrenceEndDate    string `json:"recurrenceEndDate,omitempty"`
	RecurrenceParentID   int    `json:"recurrenceParentId,omitempty"`
	IsRecurrenceInstance bool   `json:"isRecurrenceInstance"`
}

func newSubtaskResp(s model.Subtask) subtaskResp {
	return subtaskResp{
		ID:                   s.ID,
		Date:                 s.Date,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		Title:                s.Title,
		Description:          s.Description,
		Status:               string(s.Status),
		Priority:             string(s.Priority),
		DurationMinutes:      subtask.Duration(s),
		CompletedOnDate:      s.CompletedOnDate,
		MajorTaskID:          s.MajorTaskID,
		LinkedSubtaskIDs:     s.LinkedSubtaskIDs,
		IsRecurring:          s.IsRecurring,
		RecurrencePattern:    string(s.RecurrencePattern),
		RecurrenceEndDate:    s.RecurrenceEndDate,
		RecurrenceParentID:   s.RecurrenceParentID,
		IsRecurrenceInstance: s.IsRecurrenceInstance,
	}
}

func newSubtaskResps(in []model.Subtask) []subtaskResp {
	out := make([]subtaskResp, len(in))
	for i, s := range in {
		out[i] = newSubtaskResp(s)
	}
	return out
}

type createResp struct {
	Subtask   subtaskResp   `json:"subtask"`
	Instances []subtaskResp `json:"instances"`
}

func (h *handler) newCreateResp(out subtask.CreateOutput) createResp {
	return createResp{
		Subtask:   newSubtaskResp(out.Subtask),
		Instances: newSubtaskResps(out.Instances),
	}
}

type listResp struct {
	Subtasks []subtaskResp `json:"subtasks"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out subtask.ListOutput) listResp {
	return listResp{Subtasks: newSubtaskResps(out.Subtasks), Total: out.Total}
}

type detailResp struct {
	Subtask subtaskResp `json:"subtask"`
}

func (h *handler) newDetailResp(out subtask.DetailOutput) detailResp {
	return detailResp{Subtask: newSubtaskResp(out.Subtask)}
}

type updateResp struct {
	Found    bool          `json:"found"`
	Subtasks []subtaskResp `json:"subtasks"`
}

func (h *handler) newUpdateResp(out subtask.UpdateOutput) updateResp {
	return updateResp{Found: out.Found, Subtasks: newSubtaskResps(out.Updated)}
}

type deleteResp struct {
	Found   bool `json:"found"`
	Removed int  `json:"removed"`
}

func (h *handler) newDeleteResp(out subtask.DeleteOutput) deleteResp {
	return deleteResp{Found: out.Found, Removed: out.Removed}
}
