package usecase_test

import (
	"context"
	"testing"
	"time"

	"task-calendar/internal/streak/repository/kv"
	"task-calendar/internal/streak/usecase"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/kvstore"
	pkgLog "task-calendar/pkg/log"
)

func TestRecordGetReset(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := usecase.New(pkgLog.NewNop(), kv.New(store), p)

	day := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	steps := []struct {
		at   time.Time
		want int
	}{
		{day, 1},
		{day.Add(3 * time.Hour), 1},
		{day.AddDate(0, 0, 1), 2},
		{day.AddDate(0, 0, 2), 3},
		{day.AddDate(0, 0, 5), 1},
	}
	for i, s := range steps {
		got, err := uc.Record(ctx, s.at)
		if err != nil || got.Count != s.want {
			t.Fatalf("step %d: Record = %+v, %v; want count %d", i, got, err, s.want)
		}
	}

	raw, err := store.Get(ctx, "lastActiveDate")
	if err != nil || string(raw) != `"2024-01-15"` {
		t.Errorf("lastActiveDate = %s, %v", raw, err)
	}

	reset, _ := uc.Reset(ctx)
	if reset.Count != 0 || reset.LastActiveDate != "2024-01-15" {
		t.Errorf("Reset = %+v", reset)
	}
	got, _ := uc.Get(ctx)
	if got.Count != 0 {
		t.Errorf("Get after reset = %+v", got)
	}
}
