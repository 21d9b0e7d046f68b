package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-calendar/pkg/kvstore"
)

func backends(t *testing.T) map[string]kvstore.Store {
	t.Helper()
	dir := t.TempDir()

	file, err := kvstore.NewFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)

	db, err := kvstore.NewSQLite(filepath.Join(dir, "state.db"))
	require.NoError(t, err)

	cached, err := kvstore.NewCached(kvstore.NewMemory(), 8)
	require.NoError(t, err)

	stores := map[string]kvstore.Store{
		"memory": kvstore.NewMemory(),
		"file":   file,
		"sqlite": db,
		"cached": cached,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "missing")
			assert.ErrorIs(t, err, kvstore.ErrNotFound)

			require.NoError(t, s.Set(ctx, "subtask_counter", []byte("7")))
			got, err := s.Get(ctx, "subtask_counter")
			require.NoError(t, err)
			assert.Equal(t, "7", string(got))

			require.NoError(t, s.Set(ctx, "subtask_counter", []byte("8")))
			got, err = s.Get(ctx, "subtask_counter")
			require.NoError(t, err)
			assert.Equal(t, "8", string(got))

			require.NoError(t, s.Delete(ctx, "subtask_counter"))
			_, err = s.Get(ctx, "subtask_counter")
			assert.ErrorIs(t, err, kvstore.ErrNotFound)

			assert.ErrorIs(t, s.Set(ctx, "", []byte("1")), kvstore.ErrEmptyKey)
		})
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := kvstore.NewFile(path)
	require.NoError(t, err)
	require.NoError(t, kvstore.SetJSON(ctx, s, "daily_activity", []map[string]any{{"date": "2024-01-01", "totalMinutes": 30}}))

	reopened, err := kvstore.NewFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	found, err := kvstore.GetJSON(ctx, reopened, "daily_activity", &rows)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-01-01", rows[0]["date"])
}

func TestFileRejectsInvalidJSON(t *testing.T) {
	s, err := kvstore.NewFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	err = s.Set(context.Background(), "k", []byte("{not json"))
	assert.Error(t, err)
}

func TestGetJSONMissingKey(t *testing.T) {
	var v []int
	found, err := kvstore.GetJSON(context.Background(), kvstore.NewMemory(), "nope", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

type countingStore struct {
	kvstore.Store
	gets int
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	return c.Store.Get(ctx, key)
}

func TestCachedServesRepeatReadsFromCache(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: kvstore.NewMemory()}
	require.NoError(t, inner.Set(ctx, "k", []byte(`"v"`)))

	c, err := kvstore.NewCached(inner, 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `"v"`, string(got))
	}
	assert.Equal(t, 1, inner.gets)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     kvstore.Config
		wantErr bool
	}{
		{name: "default memory", cfg: kvstore.Config{}},
		{name: "file", cfg: kvstore.Config{Driver: "file", Path: filepath.Join(dir, "a.json")}},
		{name: "sqlite cached", cfg: kvstore.Config{Driver: "SQLite", Path: filepath.Join(dir, "a.db"), CacheSize: 16}},
		{name: "file without path", cfg: kvstore.Config{Driver: "file"}, wantErr: true},
		{name: "unknown", cfg: kvstore.Config{Driver: "redis"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := kvstore.Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, s.Close())
		})
	}
}
