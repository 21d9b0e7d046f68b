package kvstore

import (
	"fmt"
	"strings"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config selects and configures a backend.
type Config struct {
	Driver    string
	Path      string // file path for file/sqlite drivers
	CacheSize int    // > 0 wraps the backend in an LRU read cache
}

// Open builds the Store described by cfg.
func Open(cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverMemory:
		s = NewMemory()
	case DriverFile:
		s, err = NewFile(cfg.Path)
	case DriverSQLite:
		s, err = NewSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheSize > 0 {
		return NewCached(s, cfg.CacheSize)
	}
	return s, nil
}
