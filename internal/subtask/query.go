package subtask

import (
	"sort"

	"task-calendar/internal/model"
)

// Select returns the subtasks matching in, sorted by date then start time then id.
// Dates compare lexicographically, which is chronological for YYYY-MM-DD.
func Select(s State, in ListInput) []model.Subtask {
	out := make([]model.Subtask, 0)
	for _, t := range s.Subtasks {
		switch {
		case in.Date != "":
			if t.Date != in.Date {
				continue
			}
		default:
			if in.From != "" && t.Date < in.From {
				continue
			}
			if in.To != "" && t.Date > in.To {
				continue
			}
		}
		if in.Status != "" && t.Status != in.Status {
			continue
		}
		if in.SeriesID != 0 && !inSeries(in.SeriesID)(t) {
			continue
		}
		out = append(out, t.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}
