package http

import (
	"errors"

	"task-calendar/internal/majortask"
	pkgErrors "task-calendar/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, majortask.ErrInvalidWeekStart), errors.Is(err, majortask.ErrInvalidDayRange):
		return pkgErrors.NewBadRequestError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
