package activity

import "context"

// UseCase tracks minutes worked per day.
type UseCase interface {
	// AddTime adds (or with negative minutes, removes) time on a day.
	AddTime(ctx context.Context, input AddTimeInput) (AddTimeOutput, error)
	TotalFor(ctx context.Context, date string) (int, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Repopulate folds the durations of completed work into the totals.
	Repopulate(ctx context.Context, input RepopulateInput) (ListOutput, error)
}
