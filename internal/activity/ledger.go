package activity

import (
	"sort"

	"task-calendar/internal/model"
)

// AddTime returns rows with minutes added to date. An existing total is
// clamped at zero and the row is dropped when it reaches zero. A missing row
// is only created for positive minutes.
func AddTime(rows []model.DailyActivity, date string, minutes int) ([]model.DailyActivity, int) {
	out := make([]model.DailyActivity, 0, len(rows)+1)
	total, found := 0, false
	for _, r := range rows {
		if r.Date != date {
			out = append(out, r)
			continue
		}
		found = true
		total = max(0, r.TotalMinutes+minutes)
		if total > 0 {
			out = append(out, model.DailyActivity{Date: date, TotalMinutes: total})
		}
	}
	if !found && minutes > 0 {
		total = minutes
		out = append(out, model.DailyActivity{Date: date, TotalMinutes: minutes})
	}
	return out, total
}

// TotalFor returns the minutes recorded on date.
func TotalFor(rows []model.DailyActivity, date string) int {
	for _, r := range rows {
		if r.Date == date {
			return r.TotalMinutes
		}
	}
	return 0
}

// Repopulate adds every piece of work to the existing totals and drops the
// days whose total is not positive. The result is sorted by date.
func Repopulate(rows []model.DailyActivity, work []CompletedWork) []model.DailyActivity {
	totals := make(map[string]int, len(rows)+len(work))
	for _, r := range rows {
		totals[r.Date] += r.TotalMinutes
	}
	for _, w := range work {
		date := w.CompletedOnDate
		if date == "" {
			date = w.Date
		}
		totals[date] += w.Minutes
	}

	out := make([]model.DailyActivity, 0, len(totals))
	for date, minutes := range totals {
		if minutes > 0 {
			out = append(out, model.DailyActivity{Date: date, TotalMinutes: minutes})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Between returns the rows with from <= date <= to, sorted by date. Empty
// bounds are open.
func Between(rows []model.DailyActivity, from, to string) []model.DailyActivity {
	out := make([]model.DailyActivity, 0, len(rows))
	for _, r := range rows {
		if (from == "" || r.Date >= from) && (to == "" || r.Date <= to) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
