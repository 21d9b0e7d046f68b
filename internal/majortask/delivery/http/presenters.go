package http

import (
	"task-calendar/internal/majortask"
	"task-calendar/internal/model"
)

type createReq struct {
	WeekStart string `json:"weekStart"`
	Title     string `json:"title" binding:"max=255"`
	Color     string `json:"color" binding:"max=32"`
	StartDay  int    `json:"startDay" binding:"min=0,max=7"`
	EndDay    int    `json:"endDay" binding:"min=0,max=7"`
}

func (r createReq) toInput() majortask.CreateInput {
	return majortask.CreateInput{
		WeekStart: r.WeekStart,
		Title:     r.Title,
		Color:     r.Color,
		StartDay:  r.StartDay,
		EndDay:    r.EndDay,
	}
}

type listReq struct {
	WeekStart string `form:"week_start"`
}

type taskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	StartDay  int    `json:"startDay"`
	EndDay    int    `json:"endDay"`
	WeekStart string `json:"weekStart"`
}

func newTaskResp(t model.MajorTask) taskResp {
	return taskResp(t)
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out majortask.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type updateResp struct {
	Found bool      `json:"found"`
	Task  *taskResp `json:"task,omitempty"`
}

func (h *handler) newUpdateResp(out majortask.UpdateOutput) updateResp {
	if !out.Found {
		return updateResp{}
	}
	t := newTaskResp(out.Task)
	return updateResp{Found: true, Task: &t}
}

type deleteResp struct {
	Found bool `json:"found"`
}
