package subtask

import (
	"context"

	"task-calendar/internal/model"
)

// UseCase is the subtask store: it owns the collection and the id counter and
// persists them after every mutation.
type UseCase interface {
	// Create stores a new subtask. A recurring root also gets its instances generated.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, id int) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Update applies a partial patch to one subtask or to its whole series.
	// An unknown id is a no-op.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	// Delete removes one subtask or its whole series. An unknown id is a no-op.
	Delete(ctx context.Context, input DeleteInput) (DeleteOutput, error)
}

// Notifier receives subtask lifecycle events. Its outcome never affects state.
type Notifier interface {
	NotifyCreated(ctx context.Context, s model.Subtask)
	NotifyModified(ctx context.Context, s model.Subtask)
}
