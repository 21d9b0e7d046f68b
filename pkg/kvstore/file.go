package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File keeps every key in a single JSON document on disk, rewritten on each change.
type File struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
}

func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("kvstore: file driver requires a path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f := &File{
		path: path,
		data: map[string]json.RawMessage{},
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(b) == 0 {
		return nil
	}

	loaded := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &loaded); err != nil {
		return fmt.Errorf("kvstore: decode %s: %w", f.path, err)
	}
	f.data = loaded
	return nil
}

func (f *File) saveLocked() error {
	b, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

// Set stores value, which must be valid JSON.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !json.Valid(value) {
		return fmt.Errorf("kvstore: value for %q is not valid JSON", key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = json.RawMessage(clone(value))
	return f.saveLocked()
}

func (f *File) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.saveLocked()
}

func (f *File) Close() error { return nil }
