package http

import (
	"errors"
	"net/http"

	"task-calendar/internal/subtask"
	pkgErrors "task-calendar/pkg/errors"
)

var errInvalidID = pkgErrors.NewBadRequestError("id must be a positive integer")

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, subtask.ErrSubtaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, subtask.ErrInvalidDate),
		errors.Is(err, subtask.ErrInvalidTime),
		errors.Is(err, subtask.ErrInvalidStatus),
		errors.Is(err, subtask.ErrInvalidPriority),
		errors.Is(err, subtask.ErrInvalidRange):
		return pkgErrors.NewBadRequestError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
