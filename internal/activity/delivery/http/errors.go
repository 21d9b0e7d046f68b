package http

import (
	"errors"

	"task-calendar/internal/activity"
	pkgErrors "task-calendar/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, activity.ErrInvalidDate), errors.Is(err, activity.ErrInvalidRange):
		return pkgErrors.NewBadRequestError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
