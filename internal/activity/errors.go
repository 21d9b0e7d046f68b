package activity

import "errors"

var (
	ErrInvalidDate  = errors.New("invalid activity date")
	ErrInvalidRange = errors.New("from date is after to date")
)
