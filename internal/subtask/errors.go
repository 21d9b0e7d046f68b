package subtask

import "errors"

// Domain-specific errors for the subtask package.
var (
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime     = errors.New("time must be formatted as HH:MM")
	ErrInvalidStatus   = errors.New("status must be pending, completed or cancelled")
	ErrInvalidPriority = errors.New("priority must be high, medium or low")
	ErrInvalidRange    = errors.New("range start is after range end")
)
