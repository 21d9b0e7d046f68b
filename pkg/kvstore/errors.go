package kvstore

import "errors"

var (
	ErrNotFound      = errors.New("kvstore: key not found")
	ErrUnknownDriver = errors.New("kvstore: unknown driver")
	ErrEmptyKey      = errors.New("kvstore: empty key")
)
