package streak

import (
	"context"
	"time"
)

// UseCase tracks how many consecutive days the user has been active.
type UseCase interface {
	Record(ctx context.Context, now time.Time) (State, error)
	Get(ctx context.Context) (State, error)
	Reset(ctx context.Context) (State, error)
}
