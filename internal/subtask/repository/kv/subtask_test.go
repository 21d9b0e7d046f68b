package kv_test

import (
	"context"
	"errors"
	"testing"

	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
	"task-calendar/internal/subtask/repository/kv"
	"task-calendar/pkg/kvstore"
	pkgLog "task-calendar/pkg/log"
)

type failingStore struct {
	kvstore.Store
	failGet map[string]bool
	failSet bool
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet[key] {
		return nil, errors.New("disk on fire")
	}
	return f.Store.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errors.New("quota exceeded")
	}
	return f.Store.Set(ctx, key, value)
}

func TestRoundTripUsesDocumentedKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := kv.New(store, pkgLog.NewNop())

	in := subtask.State{
		Counter:  4,
		Subtasks: []model.Subtask{{ID: 1, Date: "2024-01-01", Title: "A", Status: model.StatusPending}},
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := store.Get(ctx, "subtask_counter")
	if err != nil || string(raw) != "4" {
		t.Fatalf("subtask_counter = %q, %v", raw, err)
	}
	if _, err := store.Get(ctx, "calendar_subtasks"); err != nil {
		t.Fatalf("calendar_subtasks missing: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Counter != 4 || len(out.Subtasks) != 1 || out.Subtasks[0].Title != "A" {
		t.Errorf("unexpected state %+v", out)
	}
}

func TestLoadEmptyStoreDefaults(t *testing.T) {
	out, err := kv.New(kvstore.NewMemory(), pkgLog.NewNop()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Counter != 1 || out.Subtasks == nil || len(out.Subtasks) != 0 {
		t.Errorf("unexpected default state %+v", out)
	}
}

func TestLoadDegradesPerKey(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	_ = mem.Set(ctx, kv.CounterKey, []byte("12"))
	_ = mem.Set(ctx, kv.SubtasksKey, []byte(`[{"id":3,"date":"2024-01-01"}]`))

	store := &failingStore{Store: mem, failGet: map[string]bool{kv.SubtasksKey: true}}
	out, err := kv.New(store, pkgLog.NewNop()).Load(ctx)

	if err == nil {
		t.Fatalf("expected error describing the failed key")
	}
	if len(out.Subtasks) != 0 {
		t.Errorf("subtasks = %v, want empty after read failure", out.Subtasks)
	}
	if out.Counter != 12 {
		t.Errorf("counter = %d, want 12 from the readable key", out.Counter)
	}
}

func TestLoadMalformedValue(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemory()
	_ = mem.Set(ctx, kv.SubtasksKey, []byte(`{"oops":`))

	out, err := kv.New(mem, pkgLog.NewNop()).Load(ctx)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if len(out.Subtasks) != 0 {
		t.Errorf("subtasks = %v, want empty", out.Subtasks)
	}
}

func TestSaveFailureReturnsError(t *testing.T) {
	store := &failingStore{Store: kvstore.NewMemory(), failSet: true}
	err := kv.New(store, pkgLog.NewNop()).Save(context.Background(), subtask.NewState())
	if err == nil {
		t.Fatalf("expected save error")
	}
}
