package activity

import "task-calendar/internal/model"

type AddTimeInput struct {
	Date    string
	Minutes int
}

// AddTimeOutput is the day's total after the change; zero means the row was
// removed or never created.
type AddTimeOutput struct {
	Date         string
	TotalMinutes int
}

type ListInput struct {
	From string
	To   string
}

type ListOutput struct {
	Activities []model.DailyActivity
	Total      int
}

// CompletedWork is one finished piece of work to credit. The minutes land on
// CompletedOnDate when set, otherwise on Date.
type CompletedWork struct {
	Date            string
	CompletedOnDate string
	Minutes         int
}

type RepopulateInput struct {
	Work []CompletedWork
}
