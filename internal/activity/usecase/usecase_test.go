package usecase_test

import (
	"context"
	"errors"
	"testing"

	"task-calendar/internal/activity"
	"task-calendar/internal/activity/repository/kv"
	"task-calendar/internal/activity/usecase"
	"task-calendar/internal/model"
	"task-calendar/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type brokenRepo struct{}

func (brokenRepo) Load(ctx context.Context) ([]model.DailyActivity, error) {
	return []model.DailyActivity{}, errors.New("corrupt")
}

func (brokenRepo) Save(ctx context.Context, rows []model.DailyActivity) error {
	return errors.New("full")
}

func TestAddTimePersists(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	uc := usecase.New(&mockLogger{}, kv.New(store))

	if _, err := uc.AddTime(ctx, activity.AddTimeInput{Date: "2024-01-01", Minutes: 45}); err != nil {
		t.Fatalf("AddTime: %v", err)
	}
	out, err := uc.AddTime(ctx, activity.AddTimeInput{Date: "2024-01-01", Minutes: -15})
	if err != nil || out.TotalMinutes != 30 {
		t.Fatalf("AddTime = %+v, %v", out, err)
	}

	reloaded := usecase.New(&mockLogger{}, kv.New(store))
	total, err := reloaded.TotalFor(ctx, "2024-01-01")
	if err != nil || total != 30 {
		t.Errorf("TotalFor = %d, %v; want 30", total, err)
	}
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, kv.New(kvstore.NewMemory()))

	if _, err := uc.AddTime(ctx, activity.AddTimeInput{Date: "yesterday", Minutes: 5}); !errors.Is(err, activity.ErrInvalidDate) {
		t.Errorf("AddTime err = %v", err)
	}
	if _, err := uc.TotalFor(ctx, ""); !errors.Is(err, activity.ErrInvalidDate) {
		t.Errorf("TotalFor err = %v", err)
	}
	if _, err := uc.List(ctx, activity.ListInput{From: "2024-02-01", To: "2024-01-01"}); !errors.Is(err, activity.ErrInvalidRange) {
		t.Errorf("List err = %v", err)
	}
}

func TestRepopulateAndList(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, kv.New(kvstore.NewMemory()))

	out, err := uc.Repopulate(ctx, activity.RepopulateInput{Work: []activity.CompletedWork{
		{Date: "2024-01-01", Minutes: 30},
		{Date: "2024-01-05", CompletedOnDate: "2024-01-06", Minutes: 90},
	}})
	if err != nil {
		t.Fatalf("Repopulate: %v", err)
	}
	if out.Total != 2 {
		t.Fatalf("Total = %d, want 2", out.Total)
	}

	list, err := uc.List(ctx, activity.ListInput{From: "2024-01-02"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Total != 1 || list.Activities[0].Date != "2024-01-06" || list.Activities[0].TotalMinutes != 90 {
		t.Errorf("List = %+v", list)
	}
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, brokenRepo{})

	out, err := uc.AddTime(ctx, activity.AddTimeInput{Date: "2024-01-01", Minutes: 10})
	if err != nil || out.TotalMinutes != 10 {
		t.Fatalf("AddTime = %+v, %v", out, err)
	}
	total, _ := uc.TotalFor(ctx, "2024-01-01")
	if total != 10 {
		t.Errorf("in-memory total = %d, want 10", total)
	}
}
