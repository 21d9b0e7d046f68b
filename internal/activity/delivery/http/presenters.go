package http

import (
	"task-calendar/internal/activity"
)

type addTimeReq struct {
	Date    string `json:"date" binding:"required"`
	Minutes int    `json:"minutes"`
}

func (r addTimeReq) toInput() activity.AddTimeInput {
	return activity.AddTimeInput{Date: r.Date, Minutes: r.Minutes}
}

type listReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (r listReq) toInput() activity.ListInput {
	return activity.ListInput{From: r.From, To: r.To}
}

type dayResp struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"totalMinutes"`
}

type listResp struct {
	Activities []dayResp `json:"activities"`
	Total      int       `json:"total"`
}

func (h *handler) newListResp(out activity.ListOutput) listResp {
	days := make([]dayResp, len(out.Activities))
	for i, a := range out.Activities {
		days[i] = dayResp{Date: a.Date, TotalMinutes: a.TotalMinutes}
	}
	return listResp{Activities: days, Total: out.Total}
}
