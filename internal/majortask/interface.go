package majortask

import "context"

// UseCase manages the multi-day bars shown above a calendar week.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Update and Delete are no-ops for an unknown id and report Found=false.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) (DeleteOutput, error)
}
